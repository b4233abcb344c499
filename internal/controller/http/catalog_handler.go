package http

import (
	"net/http"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewCatalogHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// ListPlans godoc
// @Summary      List subscription plans
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /catalog/plans [get]
func (h *CatalogHandler) ListPlans(c *gin.Context) {
	plans, err := h.catalogUseCase.ListPlans()
	if err != nil {
		h.logger.Error("Failed to list plans: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// ListPackages godoc
// @Summary      List credit packages
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /catalog/packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	packages, err := h.catalogUseCase.ListPackages()
	if err != nil {
		h.logger.Error("Failed to list packages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": packages})
}

// UpdatePlan godoc
// @Summary      Update a subscription plan (admin)
// @Description  Rewrite a catalog plan; existing subscriptions keep their snapshot
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        plan_id path string true "Plan ID"
// @Param        request body entity.SubscriptionPlan true "Plan"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/catalog/plans/{plan_id} [put]
func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	var plan entity.SubscriptionPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan.ID = c.Param("plan_id")

	if err := h.catalogUseCase.UpdatePlan(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// UpdatePackage godoc
// @Summary      Update a credit package (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        package_id path string true "Package ID"
// @Param        request body entity.CreditPackage true "Package"
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/catalog/packages/{package_id} [put]
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	var pkg entity.CreditPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pkg.ID = c.Param("package_id")

	if err := h.catalogUseCase.UpdatePackage(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"package": pkg})
}
