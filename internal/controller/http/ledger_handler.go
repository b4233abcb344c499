package http

import (
	"errors"
	"net/http"
	"strconv"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
)

type LedgerHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        *logger.Logger
}

func NewLedgerHandler(ledgerUseCase usecase.LedgerUseCase, logger *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// Purchase godoc
// @Summary      Purchase content
// @Description  Spend credits to permanently unlock a content item
// @Tags         credits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      402  {object}  map[string]string
// @Router       /content/{item_id}/purchase [post]
func (h *LedgerHandler) Purchase(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("item_id")

	if err := h.ledgerUseCase.Purchase(userID, itemID); err != nil {
		switch {
		case errors.Is(err, entity.ErrInsufficientBalance):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrSelfPurchase), errors.Is(err, entity.ErrAlreadyUnlocked):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to purchase content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	balance, err := h.ledgerUseCase.GetBalance(userID)
	if err != nil {
		h.logger.Error("Failed to get balance after purchase: %v", err)
		c.JSON(http.StatusOK, gin.H{"message": "Content unlocked"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content unlocked", "balance": balance})
}

// GetBalance godoc
// @Summary      Get credit balances
// @Description  Get the spendable and earned balances for the authenticated user
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /credits/balance [get]
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	userID := c.GetString("user_id")

	balance, err := h.ledgerUseCase.GetBalance(userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("Failed to get balance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	earned, err := h.ledgerUseCase.GetEarnedBalance(userID)
	if err != nil {
		h.logger.Error("Failed to get earned balance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance, "earned_balance": earned})
}

// GetTransactions godoc
// @Summary      Get transaction history
// @Description  Get the credit transaction log, newest first
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of transactions"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /credits/transactions [get]
func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := parsePagination(c)

	transactions, err := h.ledgerUseCase.GetTransactions(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions)})
}

// GetCreatorTransactions godoc
// @Summary      Get sales history
// @Description  Get the creator's per-sale earnings records, newest first
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Number of records"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /credits/sales [get]
func (h *LedgerHandler) GetCreatorTransactions(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := parsePagination(c)

	transactions, err := h.ledgerUseCase.GetCreatorTransactions(userID, limit, offset)
	if err != nil {
		h.logger.Error("Failed to get creator transactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions, "count": len(transactions)})
}

// GetUnlocked godoc
// @Summary      Get unlocked content IDs
// @Description  Get the IDs of all content items the user has unlocked
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /credits/unlocked [get]
func (h *LedgerHandler) GetUnlocked(c *gin.Context) {
	userID := c.GetString("user_id")

	ids, err := h.ledgerUseCase.GetUnlockedContentIDs(userID)
	if err != nil {
		h.logger.Error("Failed to get unlocked content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content_ids": ids, "count": len(ids)})
}

// ClaimReward godoc
// @Summary      Claim ad reward
// @Description  Grant the configured reward credits for watching an ad
// @Tags         credits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /credits/reward [post]
func (h *LedgerHandler) ClaimReward(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.ledgerUseCase.AddReward(userID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("Failed to claim reward: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	balance, _ := h.ledgerUseCase.GetBalance(userID)
	c.JSON(http.StatusOK, gin.H{"message": "Reward credited", "balance": balance})
}

type GrantCreditsRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// GrantCredits godoc
// @Summary      Grant credits (admin)
// @Description  Adjust a user's credit balance administratively
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GrantCreditsRequest true "Grant"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/credits/grant [post]
func (h *LedgerHandler) GrantCredits(c *gin.Context) {
	var req GrantCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ledgerUseCase.GrantCredits(req.UserID, req.Amount); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("Failed to grant credits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Credits granted", "user_id": req.UserID, "amount": req.Amount})
}

func parsePagination(c *gin.Context) (int, int) {
	limit := 50
	offset := 0

	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if o, err := strconv.Atoi(offsetStr); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}
