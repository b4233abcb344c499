package database

import (
	"fmt"

	"funfans/internal/model"
	"funfans/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	// TranslateError maps driver errors (unique violations in particular)
	// onto gorm's sentinels, which the repositories match on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.ProfileModel{},
		&model.TransactionModel{},
		&model.CreatorTransactionModel{},
		&model.ContentItemModel{},
		&model.MediaModel{},
		&model.LikeModel{},
		&model.ShareModel{},
		&model.ReactionModel{},
		&model.UnlockModel{},
		&model.FollowerModel{},
		&model.SubscriptionModel{},
		&model.SubscriptionPlanModel{},
		&model.CreditPackageModel{},
		&model.UserTimeoutModel{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
