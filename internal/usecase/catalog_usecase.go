package usecase

import (
	"fmt"

	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/pkg/logger"
)

type CatalogUseCase interface {
	ListPlans() ([]*entity.SubscriptionPlan, error)
	ListPackages() ([]*entity.CreditPackage, error)
	UpdatePlan(plan *entity.SubscriptionPlan) error
	UpdatePackage(pkg *entity.CreditPackage) error
}

type catalogUseCase struct {
	catalogRepo persistent.CatalogRepository
	logger      *logger.Logger
}

func NewCatalogUseCase(catalogRepo persistent.CatalogRepository, logger *logger.Logger) CatalogUseCase {
	return &catalogUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *catalogUseCase) ListPlans() ([]*entity.SubscriptionPlan, error) {
	return uc.catalogRepo.ListPlans()
}

func (uc *catalogUseCase) ListPackages() ([]*entity.CreditPackage, error) {
	return uc.catalogRepo.ListPackages()
}

// UpdatePlan rewrites a catalog row. Existing subscriptions keep their
// snapshot of the old plan.
func (uc *catalogUseCase) UpdatePlan(plan *entity.SubscriptionPlan) error {
	if plan.ID == "" || plan.Name == "" {
		return fmt.Errorf("plan id and name are required")
	}
	if plan.PriceUSD < 0 || plan.Credits < 0 {
		return fmt.Errorf("plan price and credits cannot be negative")
	}

	if err := uc.catalogRepo.SavePlan(plan); err != nil {
		uc.logger.Error("Failed to save plan %s: %v", plan.ID, err)
		return err
	}
	return nil
}

func (uc *catalogUseCase) UpdatePackage(pkg *entity.CreditPackage) error {
	if pkg.ID == "" || pkg.Name == "" {
		return fmt.Errorf("package id and name are required")
	}
	if pkg.PriceUSD < 0 || pkg.Credits < 0 {
		return fmt.Errorf("package price and credits cannot be negative")
	}

	if err := uc.catalogRepo.SavePackage(pkg); err != nil {
		uc.logger.Error("Failed to save package %s: %v", pkg.ID, err)
		return err
	}
	return nil
}
