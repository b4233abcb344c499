package persistent

import (
	"errors"

	"funfans/internal/entity"
	"funfans/internal/model"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	ListPlans() ([]*entity.SubscriptionPlan, error)
	GetPlan(id string) (*entity.SubscriptionPlan, error)
	SavePlan(plan *entity.SubscriptionPlan) error
	ListPackages() ([]*entity.CreditPackage, error)
	GetPackage(id string) (*entity.CreditPackage, error)
	SavePackage(pkg *entity.CreditPackage) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListPlans() ([]*entity.SubscriptionPlan, error) {
	var rows []model.SubscriptionPlanModel
	if err := r.db.Order("price_usd ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	plans := make([]*entity.SubscriptionPlan, len(rows))
	for i := range rows {
		plans[i] = ToPlanEntity(&rows[i])
	}
	return plans, nil
}

func (r *catalogRepository) GetPlan(id string) (*entity.SubscriptionPlan, error) {
	var m model.SubscriptionPlanModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPlanEntity(&m), nil
}

func (r *catalogRepository) SavePlan(plan *entity.SubscriptionPlan) error {
	m := &model.SubscriptionPlanModel{
		ID:       plan.ID,
		Name:     plan.Name,
		PriceUSD: plan.PriceUSD,
		Credits:  plan.Credits,
	}
	return r.db.Save(m).Error
}

func (r *catalogRepository) ListPackages() ([]*entity.CreditPackage, error) {
	var rows []model.CreditPackageModel
	if err := r.db.Order("price_usd ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	packages := make([]*entity.CreditPackage, len(rows))
	for i := range rows {
		packages[i] = ToPackageEntity(&rows[i])
	}
	return packages, nil
}

func (r *catalogRepository) GetPackage(id string) (*entity.CreditPackage, error) {
	var m model.CreditPackageModel
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPackageEntity(&m), nil
}

func (r *catalogRepository) SavePackage(pkg *entity.CreditPackage) error {
	m := &model.CreditPackageModel{
		ID:       pkg.ID,
		Name:     pkg.Name,
		PriceUSD: pkg.PriceUSD,
		Credits:  pkg.Credits,
	}
	return r.db.Save(m).Error
}
