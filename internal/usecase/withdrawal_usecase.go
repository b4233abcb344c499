package usecase

import (
	"time"

	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/pkg/config"
	"funfans/pkg/logger"
)

// WithdrawalStatus reports when the user may next request a withdrawal.
// Payout execution itself happens outside this service.
type WithdrawalStatus struct {
	EarnedBalance    float64    `json:"earned_balance"`
	CanWithdraw      bool       `json:"can_withdraw"`
	AvailableAt      time.Time  `json:"available_at"`
	LastWithdrawalAt *time.Time `json:"last_withdrawal_at,omitempty"`
}

type WithdrawalUseCase interface {
	Status(userID string) (*WithdrawalStatus, error)
	ProcessWithdrawal(userID string) error
}

type withdrawalUseCase struct {
	profileRepo persistent.ProfileRepository
	cfg         *config.Config
	logger      *logger.Logger
	now         func() time.Time
}

func NewWithdrawalUseCase(profileRepo persistent.ProfileRepository, cfg *config.Config, logger *logger.Logger) WithdrawalUseCase {
	return &withdrawalUseCase{
		profileRepo: profileRepo,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *withdrawalUseCase) cooldown() time.Duration {
	return time.Duration(uc.cfg.WithdrawalCooldownHours) * time.Hour
}

func (uc *withdrawalUseCase) Status(userID string) (*WithdrawalStatus, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, entity.ErrNotFound
	}

	now := uc.now()
	status := &WithdrawalStatus{
		EarnedBalance:    profile.EarnedBalance,
		CanWithdraw:      true,
		AvailableAt:      now,
		LastWithdrawalAt: profile.LastWithdrawalAt,
	}
	if profile.LastWithdrawalAt != nil {
		availableAt := profile.LastWithdrawalAt.Add(uc.cooldown())
		if availableAt.After(now) {
			status.CanWithdraw = false
			status.AvailableAt = availableAt
		}
	}
	return status, nil
}

// ProcessWithdrawal claims the user's withdrawal slot. The cooldown check
// and the timestamp write happen in a single conditional UPDATE, so two
// concurrent requests inside the window cannot both succeed.
func (uc *withdrawalUseCase) ProcessWithdrawal(userID string) error {
	now := uc.now()
	earliestAllowed := now.Add(-uc.cooldown())
	if err := uc.profileRepo.ClaimWithdrawal(userID, now, earliestAllowed); err != nil {
		if err != entity.ErrCooldownActive && err != entity.ErrNotFound {
			uc.logger.Error("Failed to process withdrawal for %s: %v", userID, err)
		}
		return err
	}

	uc.logger.Info("Withdrawal requested by %s", userID)
	return nil
}
