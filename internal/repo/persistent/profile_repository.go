package persistent

import (
	"errors"
	"time"

	"funfans/internal/entity"
	"funfans/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetByID(id string) (*entity.Profile, error)
	GetBySlug(slug string) (*entity.Profile, error)
	List() ([]*entity.Profile, error)
	Update(id string, update *entity.ProfileUpdate) error
	CreateFollower(followerID, followingID string) error
	DeleteFollower(followerID, followingID string) error
	GetFollowerIDs(userID string) ([]string, error)
	GetFollowingIDs(userID string) ([]string, error)
	ClaimWithdrawal(userID string, now, earliestAllowed time.Time) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByID(id string) (*entity.Profile, error) {
	var profile model.ProfileModel
	if err := r.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToProfileEntity(&profile), nil
}

func (r *profileRepository) GetBySlug(slug string) (*entity.Profile, error) {
	var profile model.ProfileModel
	if err := r.db.Where("vitrine_slug = ?", slug).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToProfileEntity(&profile), nil
}

func (r *profileRepository) List() ([]*entity.Profile, error) {
	var rows []model.ProfileModel
	if err := r.db.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	profiles := make([]*entity.Profile, len(rows))
	for i := range rows {
		profiles[i] = ToProfileEntity(&rows[i])
	}
	return profiles, nil
}

func (r *profileRepository) Update(id string, update *entity.ProfileUpdate) error {
	fields := map[string]interface{}{}
	if update.Username != nil {
		fields["username"] = *update.Username
	}
	if update.ProfilePictureURL != nil {
		fields["profile_picture_url"] = *update.ProfilePictureURL
	}
	if update.VitrineSlug != nil {
		fields["vitrine_slug"] = *update.VitrineSlug
	}
	if update.Bio != nil {
		fields["bio"] = *update.Bio
	}
	if len(fields) == 0 {
		return nil
	}

	res := r.db.Model(&model.ProfileModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *profileRepository) CreateFollower(followerID, followingID string) error {
	var count int64
	err := r.db.Model(&model.FollowerModel{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	follower := &model.FollowerModel{
		FollowerID:  followerID,
		FollowingID: followingID,
	}
	return r.db.Create(follower).Error
}

func (r *profileRepository) DeleteFollower(followerID, followingID string) error {
	return r.db.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.FollowerModel{}).Error
}

func (r *profileRepository) GetFollowerIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.FollowerModel{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

func (r *profileRepository) GetFollowingIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.FollowerModel{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

// ClaimWithdrawal records a withdrawal instant, but only if the previous one
// is old enough. The condition lives in the UPDATE itself so two concurrent
// requests cannot both slip through the cooldown window.
func (r *profileRepository) ClaimWithdrawal(userID string, now, earliestAllowed time.Time) error {
	res := r.db.Model(&model.ProfileModel{}).
		Where("id = ? AND (last_withdrawal_at IS NULL OR last_withdrawal_at <= ?)", userID, earliestAllowed).
		Update("last_withdrawal_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Zero rows means either the cooldown blocked the claim or the
		// profile does not exist; tell them apart for the caller.
		var count int64
		if err := r.db.Model(&model.ProfileModel{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return entity.ErrNotFound
		}
		return entity.ErrCooldownActive
	}
	return nil
}
