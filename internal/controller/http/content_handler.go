package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase    usecase.ContentUseCase
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewContentHandler(
	contentUseCase usecase.ContentUseCase,
	moderationUseCase usecase.ModerationUseCase,
	logger *logger.Logger,
) *ContentHandler {
	return &ContentHandler{
		contentUseCase:    contentUseCase,
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

func (h *ContentHandler) canViewHidden(c *gin.Context) bool {
	return entity.ParseRole(c.GetString("role")).Can(entity.CapViewHidden)
}

// rejectIfTimedOut blocks social writes from users under an active
// moderation timeout.
func (h *ContentHandler) rejectIfTimedOut(c *gin.Context) bool {
	userID := c.GetString("user_id")

	info, err := h.moderationUseCase.TimeoutInfo(userID)
	if err != nil {
		h.logger.Error("Failed to check timeout for %s: %v", userID, err)
		return false
	}
	if info != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"error":    "account temporarily restricted",
			"message":  info.Message,
			"end_time": info.EndTime,
		})
		return true
	}
	return false
}

// Create godoc
// @Summary      Create content item
// @Description  Publish a new content item with media uploads
// @Tags         content
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Title"
// @Param        price formData number true "Price in credits"
// @Param        blur_level formData int false "Preview blur level"
// @Param        tags formData string false "Comma separated tags"
// @Param        images formData file false "Image files"
// @Param        videos formData file false "Video files"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /content [post]
func (h *ContentHandler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	title := c.PostForm("title")
	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
		return
	}
	blurLevel, _ := strconv.Atoi(c.PostForm("blur_level"))

	var tags []string
	if raw := c.PostForm("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	input := usecase.CreateContentInput{
		Title:     title,
		Price:     price,
		BlurLevel: blurLevel,
		Tags:      tags,
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}
	for field, mediaType := range map[string]entity.MediaType{
		"images": entity.MediaTypeImage,
		"videos": entity.MediaTypeVideo,
	} {
		for _, header := range form.File[field] {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read upload"})
				return
			}
			defer file.Close()
			input.Uploads = append(input.Uploads, usecase.MediaUpload{
				File:        file,
				ContentType: header.Header.Get("Content-Type"),
				MediaType:   mediaType,
			})
		}
	}

	item, err := h.contentUseCase.Create(userID, input)
	if err != nil {
		h.logger.Error("Failed to create content: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"content": item})
}

// List godoc
// @Summary      List content
// @Description  List content items, newest first, optionally filtered by tag
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        tag query string false "Tag filter"
// @Param        limit query int false "Number of items"
// @Param        offset query int false "Offset"
// @Success      200  {object}  map[string]interface{}
// @Router       /content [get]
func (h *ContentHandler) List(c *gin.Context) {
	userID := c.GetString("user_id")
	limit, offset := parsePagination(c)

	items, err := h.contentUseCase.List(userID, h.canViewHidden(c), c.Query("tag"), limit, offset)
	if err != nil {
		h.logger.Error("Failed to list content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": items, "count": len(items)})
}

// Get godoc
// @Summary      Get content item
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /content/{item_id} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("item_id")

	item, err := h.contentUseCase.Get(itemID, userID, h.canViewHidden(c))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		h.logger.Error("Failed to get content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": item})
}

// Delete godoc
// @Summary      Delete own content
// @Description  Delete an owned content item older than 24 hours
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /content/{item_id} [delete]
func (h *ContentHandler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("item_id")

	if err := h.contentUseCase.Delete(itemID, userID); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
		case errors.Is(err, entity.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this content"})
		case errors.Is(err, entity.ErrContentTooYoung):
			c.JSON(http.StatusForbidden, gin.H{"error": "content can only be deleted 24 hours after posting"})
		default:
			h.logger.Error("Failed to delete content: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content deleted"})
}

// ToggleLike godoc
// @Summary      Toggle like
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /content/{item_id}/like [post]
func (h *ContentHandler) ToggleLike(c *gin.Context) {
	if h.rejectIfTimedOut(c) {
		return
	}
	userID := c.GetString("user_id")
	itemID := c.Param("item_id")

	liked, err := h.contentUseCase.ToggleLike(userID, itemID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		h.logger.Error("Failed to toggle like: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

type ReactionRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

// ToggleReaction godoc
// @Summary      Toggle emoji reaction
// @Description  Set, replace or clear the caller's single emoji reaction
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Param        request body ReactionRequest true "Emoji"
// @Success      200  {object}  map[string]interface{}
// @Router       /content/{item_id}/reaction [post]
func (h *ContentHandler) ToggleReaction(c *gin.Context) {
	if h.rejectIfTimedOut(c) {
		return
	}
	userID := c.GetString("user_id")
	itemID := c.Param("item_id")

	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reacted, err := h.contentUseCase.ToggleReaction(userID, itemID, req.Emoji)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		h.logger.Error("Failed to toggle reaction: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reacted": reacted})
}

// Share godoc
// @Summary      Share content
// @Description  Record that the caller shared the item; idempotent
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        item_id path string true "Content item ID"
// @Success      200  {object}  map[string]string
// @Router       /content/{item_id}/share [post]
func (h *ContentHandler) Share(c *gin.Context) {
	if h.rejectIfTimedOut(c) {
		return
	}
	userID := c.GetString("user_id")
	itemID := c.Param("item_id")

	if err := h.contentUseCase.Share(userID, itemID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "content not found"})
			return
		}
		h.logger.Error("Failed to share content: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content shared"})
}
