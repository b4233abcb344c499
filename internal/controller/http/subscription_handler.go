package http

import (
	"errors"
	"net/http"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SubscriptionHandler struct {
	subscriptionUseCase usecase.SubscriptionUseCase
	logger              *logger.Logger
}

func NewSubscriptionHandler(subscriptionUseCase usecase.SubscriptionUseCase, logger *logger.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUseCase: subscriptionUseCase,
		logger:              logger,
	}
}

type SubscribeRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// Get godoc
// @Summary      Get subscription
// @Description  Get the authenticated user's active subscription, if any
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /subscription [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	sub, err := h.subscriptionUseCase.Get(userID)
	if err != nil {
		h.logger.Error("Failed to get subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}

// Subscribe godoc
// @Summary      Subscribe to a plan
// @Description  Subscribe the authenticated user and grant the plan's credits
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubscribeRequest true "Plan"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /subscription [post]
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subscriptionUseCase.Subscribe(userID, req.PlanID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		h.logger.Error("Failed to subscribe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed", "subscription": sub})
}

// Cancel godoc
// @Summary      Cancel subscription
// @Description  Cancel the authenticated user's subscription; a no-op when none is active
// @Tags         subscriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Router       /subscription [delete]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.subscriptionUseCase.Cancel(userID); err != nil {
		if errors.Is(err, entity.ErrNoSubscription) {
			// Canceling without an active subscription is a no-op.
			c.JSON(http.StatusOK, gin.H{"message": "No active subscription"})
			return
		}
		h.logger.Error("Failed to cancel subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled"})
}

// SubscribeUser godoc
// @Summary      Assign subscription (admin)
// @Description  Assign a plan to a user without granting credits
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        request body SubscribeRequest true "Plan"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/subscriptions/{user_id} [post]
func (h *SubscriptionHandler) SubscribeUser(c *gin.Context) {
	targetID := c.Param("user_id")

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.subscriptionUseCase.SubscribeUser(targetID, req.PlanID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		h.logger.Error("Failed to assign subscription: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription assigned", "subscription": sub})
}

// CancelUser godoc
// @Summary      Cancel subscription (admin)
// @Description  Cancel a user's subscription administratively
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Router       /admin/subscriptions/{user_id} [delete]
func (h *SubscriptionHandler) CancelUser(c *gin.Context) {
	targetID := c.Param("user_id")

	if err := h.subscriptionUseCase.CancelUser(targetID); err != nil {
		if errors.Is(err, entity.ErrNoSubscription) {
			c.JSON(http.StatusOK, gin.H{"message": "No active subscription"})
			return
		}
		h.logger.Error("Failed to cancel subscription for %s: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled"})
}
