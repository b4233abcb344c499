package http

import (
	"errors"
	"net/http"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
)

type WithdrawalHandler struct {
	withdrawalUseCase usecase.WithdrawalUseCase
	logger            *logger.Logger
}

func NewWithdrawalHandler(withdrawalUseCase usecase.WithdrawalUseCase, logger *logger.Logger) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalUseCase: withdrawalUseCase,
		logger:            logger,
	}
}

// Status godoc
// @Summary      Get withdrawal status
// @Description  Report the earned balance and when the next withdrawal is allowed
// @Tags         withdrawals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.WithdrawalStatus
// @Router       /withdrawals/status [get]
func (h *WithdrawalHandler) Status(c *gin.Context) {
	userID := c.GetString("user_id")

	status, err := h.withdrawalUseCase.Status(userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("Failed to get withdrawal status: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Process godoc
// @Summary      Request a withdrawal
// @Description  Claim the withdrawal slot; rejected while the cooldown is active
// @Tags         withdrawals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /withdrawals [post]
func (h *WithdrawalHandler) Process(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.withdrawalUseCase.ProcessWithdrawal(userID); err != nil {
		switch {
		case errors.Is(err, entity.ErrCooldownActive):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "withdrawal cooldown active"})
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			h.logger.Error("Failed to process withdrawal: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Withdrawal requested"})
}
