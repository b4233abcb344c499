package http

import (
	"errors"
	"net/http"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewModerationHandler(moderationUseCase usecase.ModerationUseCase, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

type SetTimeoutRequest struct {
	DurationHours int    `json:"duration_hours" binding:"required,min=1"`
	Message       string `json:"message"`
}

// SetTimeout godoc
// @Summary      Time out a user
// @Description  Restrict a user for a number of hours; replaces any existing timeout
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        request body SetTimeoutRequest true "Timeout"
// @Success      200  {object}  map[string]interface{}
// @Router       /moderation/timeouts/{user_id} [post]
func (h *ModerationHandler) SetTimeout(c *gin.Context) {
	targetID := c.Param("user_id")

	var req SetTimeoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	timeout, err := h.moderationUseCase.SetTimeout(targetID, req.DurationHours, req.Message)
	if err != nil {
		h.logger.Error("Failed to set timeout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeout": timeout})
}

// GetTimeout godoc
// @Summary      Get a user's timeout
// @Description  Get the active timeout for a user; expired timeouts read as absent
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /moderation/timeouts/{user_id} [get]
func (h *ModerationHandler) GetTimeout(c *gin.Context) {
	targetID := c.Param("user_id")

	info, err := h.moderationUseCase.TimeoutInfo(targetID)
	if err != nil {
		h.logger.Error("Failed to get timeout: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timed_out": info != nil, "timeout": info})
}

type SetHiddenRequest struct {
	Hidden *bool `json:"hidden" binding:"required"`
}

// SetContentHidden godoc
// @Summary      Hide or unhide a content item
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Param        request body SetHiddenRequest true "Hidden flag"
// @Success      200  {object}  map[string]string
// @Router       /moderation/content/{item_id}/hidden [put]
func (h *ModerationHandler) SetContentHidden(c *gin.Context) {
	itemID := c.Param("item_id")

	var req SetHiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.moderationUseCase.SetHidden(itemID, *req.Hidden); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		h.logger.Error("Failed to set hidden flag: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content visibility updated"})
}

// RemoveContent godoc
// @Summary      Remove a content item
// @Description  Force delete a content item regardless of age or ownership
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Success      200  {object}  map[string]string
// @Router       /moderation/content/{item_id} [delete]
func (h *ModerationHandler) RemoveContent(c *gin.Context) {
	itemID := c.Param("item_id")

	if err := h.moderationUseCase.Remove(itemID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		h.logger.Error("Failed to remove content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content removed"})
}

// HideCreatorContent godoc
// @Summary      Hide or unhide all content from a creator
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Param        request body SetHiddenRequest true "Hidden flag"
// @Success      200  {object}  map[string]string
// @Router       /moderation/creators/{creator_id}/hidden [put]
func (h *ModerationHandler) HideCreatorContent(c *gin.Context) {
	creatorID := c.Param("creator_id")

	var req SetHiddenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.moderationUseCase.HideAllFromCreator(creatorID, *req.Hidden); err != nil {
		h.logger.Error("Failed to hide creator content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Creator content visibility updated"})
}

// RemoveCreatorContent godoc
// @Summary      Remove all content from a creator
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        creator_id path string true "Creator ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /moderation/creators/{creator_id}/content [delete]
func (h *ModerationHandler) RemoveCreatorContent(c *gin.Context) {
	creatorID := c.Param("creator_id")

	deleted, err := h.moderationUseCase.RemoveAllFromCreator(creatorID)
	if err != nil {
		h.logger.Error("Failed to remove creator content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Creator content removed", "deleted": deleted})
}
