package http

import (
	"errors"
	"net/http"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         *logger.Logger
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// Me godoc
// @Summary      Get own profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Profile
// @Router       /profiles/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	h.respondWithProfile(c, c.GetString("user_id"))
}

// Get godoc
// @Summary      Get a profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  map[string]string
// @Router       /profiles/{user_id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	h.respondWithProfile(c, c.Param("user_id"))
}

func (h *ProfileHandler) respondWithProfile(c *gin.Context, userID string) {
	profile, err := h.profileUseCase.Get(userID)
	if err != nil {
		h.logger.Error("Failed to get profile %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// List godoc
// @Summary      List profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileUseCase.List()
	if err != nil {
		h.logger.Error("Failed to list profiles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "count": len(profiles)})
}

// Update godoc
// @Summary      Update own profile
// @Description  Partially update username, bio, picture or vitrine slug
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body entity.ProfileUpdate true "Fields to update"
// @Success      200  {object}  entity.Profile
// @Router       /profiles/me [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	var update entity.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUseCase.Update(userID, &update)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Follow godoc
// @Summary      Follow a user
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID to follow"
// @Success      200  {object}  map[string]string
// @Router       /profiles/{user_id}/follow [post]
func (h *ProfileHandler) Follow(c *gin.Context) {
	userID := c.GetString("user_id")
	targetID := c.Param("user_id")

	if err := h.profileUseCase.Follow(userID, targetID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("Failed to follow: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Following"})
}

// Unfollow godoc
// @Summary      Unfollow a user
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID to unfollow"
// @Success      200  {object}  map[string]string
// @Router       /profiles/{user_id}/follow [delete]
func (h *ProfileHandler) Unfollow(c *gin.Context) {
	userID := c.GetString("user_id")
	targetID := c.Param("user_id")

	if err := h.profileUseCase.Unfollow(userID, targetID); err != nil {
		h.logger.Error("Failed to unfollow: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed"})
}

// GetBySlug godoc
// @Summary      Get a profile by vitrine slug
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        slug path string true "Vitrine slug"
// @Success      200  {object}  entity.Profile
// @Failure      404  {object}  map[string]string
// @Router       /vitrine/{slug} [get]
func (h *ProfileHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	profile, err := h.profileUseCase.GetBySlug(slug)
	if err != nil {
		h.logger.Error("Failed to get profile by slug %s: %v", slug, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
