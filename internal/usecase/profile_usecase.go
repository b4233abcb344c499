package usecase

import (
	"fmt"

	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/pkg/logger"
)

type ProfileUseCase interface {
	Get(userID string) (*entity.Profile, error)
	GetBySlug(slug string) (*entity.Profile, error)
	List() ([]*entity.Profile, error)
	Update(userID string, update *entity.ProfileUpdate) (*entity.Profile, error)
	Follow(followerID, targetID string) error
	Unfollow(followerID, targetID string) error
}

type profileUseCase struct {
	profileRepo persistent.ProfileRepository
	logger      *logger.Logger
}

func NewProfileUseCase(profileRepo persistent.ProfileRepository, logger *logger.Logger) ProfileUseCase {
	return &profileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *profileUseCase) Get(userID string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(userID)
	if err != nil || profile == nil {
		return nil, err
	}
	if err := uc.attachFollows(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *profileUseCase) GetBySlug(slug string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetBySlug(slug)
	if err != nil || profile == nil {
		return nil, err
	}
	if err := uc.attachFollows(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (uc *profileUseCase) List() ([]*entity.Profile, error) {
	profiles, err := uc.profileRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list profiles: %v", err)
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, profile := range profiles {
		if err := uc.attachFollows(profile); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

func (uc *profileUseCase) attachFollows(profile *entity.Profile) error {
	followers, err := uc.profileRepo.GetFollowerIDs(profile.ID)
	if err != nil {
		return err
	}
	following, err := uc.profileRepo.GetFollowingIDs(profile.ID)
	if err != nil {
		return err
	}
	profile.Followers = followers
	profile.Following = following
	return nil
}

func (uc *profileUseCase) Update(userID string, update *entity.ProfileUpdate) (*entity.Profile, error) {
	if err := uc.profileRepo.Update(userID, update); err != nil {
		uc.logger.Error("Failed to update profile %s: %v", userID, err)
		return nil, err
	}
	return uc.Get(userID)
}

// Follow is idempotent; following twice or following yourself changes
// nothing.
func (uc *profileUseCase) Follow(followerID, targetID string) error {
	if followerID == targetID {
		return nil
	}

	target, err := uc.profileRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return entity.ErrNotFound
	}

	return uc.profileRepo.CreateFollower(followerID, targetID)
}

func (uc *profileUseCase) Unfollow(followerID, targetID string) error {
	return uc.profileRepo.DeleteFollower(followerID, targetID)
}
