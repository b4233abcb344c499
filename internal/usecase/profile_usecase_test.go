package usecase

import (
	"testing"

	"funfans/internal/entity"
	"funfans/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetProfile_AttachesFollows(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "user-1").Return(&entity.Profile{ID: "user-1", Username: "ana"}, nil)
	profileRepo.On("GetFollowerIDs", "user-1").Return([]string{"user-2"}, nil)
	profileRepo.On("GetFollowingIDs", "user-1").Return([]string{"user-3", "user-4"}, nil)

	uc := NewProfileUseCase(profileRepo, logger.New())
	profile, err := uc.Get("user-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"user-2"}, profile.Followers)
	assert.Len(t, profile.Following, 2)
}

func TestGetProfile_Missing(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "ghost").Return(nil, nil)

	uc := NewProfileUseCase(profileRepo, logger.New())
	profile, err := uc.Get("ghost")

	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestFollow_SelfIsNoOp(t *testing.T) {
	profileRepo := new(MockProfileRepository)

	uc := NewProfileUseCase(profileRepo, logger.New())
	err := uc.Follow("user-1", "user-1")

	assert.NoError(t, err)
	profileRepo.AssertNotCalled(t, "CreateFollower", mock.Anything, mock.Anything)
}

func TestFollow_UnknownTarget(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "ghost").Return(nil, nil)

	uc := NewProfileUseCase(profileRepo, logger.New())
	err := uc.Follow("user-1", "ghost")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestFollow_CreatesRow(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	profileRepo.On("GetByID", "user-2").Return(&entity.Profile{ID: "user-2"}, nil)
	profileRepo.On("CreateFollower", "user-1", "user-2").Return(nil)

	uc := NewProfileUseCase(profileRepo, logger.New())
	err := uc.Follow("user-1", "user-2")

	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	bio := "new bio"
	update := &entity.ProfileUpdate{Bio: &bio}

	profileRepo := new(MockProfileRepository)
	profileRepo.On("Update", "user-1", update).Return(nil)
	profileRepo.On("GetByID", "user-1").Return(&entity.Profile{ID: "user-1", Bio: bio}, nil)
	profileRepo.On("GetFollowerIDs", "user-1").Return([]string{}, nil)
	profileRepo.On("GetFollowingIDs", "user-1").Return([]string{}, nil)

	uc := NewProfileUseCase(profileRepo, logger.New())
	profile, err := uc.Update("user-1", update)

	assert.NoError(t, err)
	assert.Equal(t, "new bio", profile.Bio)
}
