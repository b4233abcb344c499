package usecase

import (
	"time"

	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/pkg/logger"
)

type ModerationUseCase interface {
	SetTimeout(userID string, durationHours int, message string) (*entity.UserTimeout, error)
	IsTimedOut(userID string) (bool, error)
	TimeoutInfo(userID string) (*entity.UserTimeout, error)

	SetHidden(itemID string, hidden bool) error
	Remove(itemID string) error
	HideAllFromCreator(creatorID string, hidden bool) error
	RemoveAllFromCreator(creatorID string) (int64, error)
}

type moderationUseCase struct {
	timeoutRepo persistent.TimeoutRepository
	contentRepo persistent.ContentRepository
	logger      *logger.Logger
	now         func() time.Time
}

func NewModerationUseCase(
	timeoutRepo persistent.TimeoutRepository,
	contentRepo persistent.ContentRepository,
	logger *logger.Logger,
) ModerationUseCase {
	return &moderationUseCase{
		timeoutRepo: timeoutRepo,
		contentRepo: contentRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// SetTimeout overwrites any existing timeout for the user. Durations do not
// stack; the latest call wins even when it shortens the remaining time.
func (uc *moderationUseCase) SetTimeout(userID string, durationHours int, message string) (*entity.UserTimeout, error) {
	timeout := &entity.UserTimeout{
		UserID:  userID,
		EndTime: uc.now().Add(time.Duration(durationHours) * time.Hour),
		Message: message,
	}
	if err := uc.timeoutRepo.Upsert(timeout); err != nil {
		uc.logger.Error("Failed to set timeout for %s: %v", userID, err)
		return nil, err
	}

	uc.logger.Info("User %s timed out until %s", userID, timeout.EndTime.Format(time.RFC3339))
	return timeout, nil
}

func (uc *moderationUseCase) IsTimedOut(userID string) (bool, error) {
	info, err := uc.TimeoutInfo(userID)
	if err != nil {
		return false, err
	}
	return info != nil, nil
}

// TimeoutInfo returns the active timeout, or nil once it has lapsed.
// Expiry is lazy; rows are never reaped, just read past.
func (uc *moderationUseCase) TimeoutInfo(userID string) (*entity.UserTimeout, error) {
	timeout, err := uc.timeoutRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if timeout == nil || !uc.now().Before(timeout.EndTime) {
		return nil, nil
	}
	return timeout, nil
}

func (uc *moderationUseCase) SetHidden(itemID string, hidden bool) error {
	return uc.contentRepo.SetHidden(itemID, hidden)
}

// Remove force-deletes an item regardless of its age or owner. The 24 hour
// guard applies only to creators deleting their own content.
func (uc *moderationUseCase) Remove(itemID string) error {
	if err := uc.contentRepo.Delete(itemID); err != nil {
		return err
	}
	uc.logger.Warn("Content item %s removed by moderation", itemID)
	return nil
}

func (uc *moderationUseCase) HideAllFromCreator(creatorID string, hidden bool) error {
	return uc.contentRepo.SetHiddenByCreator(creatorID, hidden)
}

func (uc *moderationUseCase) RemoveAllFromCreator(creatorID string) (int64, error) {
	deleted, err := uc.contentRepo.DeleteByCreator(creatorID)
	if err != nil {
		uc.logger.Error("Failed to remove content for creator %s: %v", creatorID, err)
		return 0, err
	}
	uc.logger.Warn("Removed %d content items from creator %s", deleted, creatorID)
	return deleted, nil
}
