package main

import (
	"fmt"

	"funfans/internal/model"
	"funfans/pkg/config"
	"funfans/pkg/database"
	"funfans/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	plans := []model.SubscriptionPlanModel{
		{ID: "plan-basic", Name: "Basic", PriceUSD: 9.99, Credits: 200},
		{ID: "plan-plus", Name: "Plus", PriceUSD: 14.99, Credits: 350},
		{ID: "plan-pro", Name: "Pro", PriceUSD: 24.99, Credits: 600},
	}
	for _, plan := range plans {
		if err := db.Save(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed plan %s: %w", plan.ID, err)
		}
	}
	log.Info("Seeded %d subscription plans", len(plans))

	packages := []model.CreditPackageModel{
		{ID: "pack-starter", Name: "Starter", PriceUSD: 4.99, Credits: 100},
		{ID: "pack-value", Name: "Value", PriceUSD: 19.99, Credits: 450},
		{ID: "pack-mega", Name: "Mega", PriceUSD: 49.99, Credits: 1200},
	}
	for _, pkg := range packages {
		if err := db.Save(&pkg).Error; err != nil {
			return fmt.Errorf("failed to seed package %s: %w", pkg.ID, err)
		}
	}
	log.Info("Seeded %d credit packages", len(packages))

	demoProfiles := []model.ProfileModel{
		{Username: "ana_creates", VitrineSlug: "ana", Bio: "Travel and lifestyle sets", Role: "creator", CreditsBalance: 50},
		{Username: "bruno_lens", VitrineSlug: "bruno", Bio: "Street photography", Role: "creator", CreditsBalance: 50},
		{Username: "carla_fan", VitrineSlug: "carla", Role: "user", CreditsBalance: 300},
		{Username: "staff_dev", VitrineSlug: "staff", Role: "developer"},
	}
	for _, profile := range demoProfiles {
		var existing model.ProfileModel
		result := db.Where("username = ?", profile.Username).First(&existing)
		if result.Error == nil {
			log.Info("Profile %s already exists, skipping", profile.Username)
			continue
		}
		if result.Error != gorm.ErrRecordNotFound {
			return result.Error
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile %s: %w", profile.Username, err)
		}
	}
	log.Info("Seeded %d demo profiles", len(demoProfiles))

	return nil
}
