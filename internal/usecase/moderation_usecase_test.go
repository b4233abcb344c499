package usecase

import (
	"testing"
	"time"

	"funfans/internal/entity"
	"funfans/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var moderationNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newModerationUC(timeoutRepo *MockTimeoutRepository, contentRepo *MockContentRepository) *moderationUseCase {
	uc := NewModerationUseCase(timeoutRepo, contentRepo, logger.New()).(*moderationUseCase)
	uc.now = func() time.Time { return moderationNow }
	return uc
}

func TestSetTimeout_OverwritesExisting(t *testing.T) {
	timeoutRepo := new(MockTimeoutRepository)
	contentRepo := new(MockContentRepository)

	timeoutRepo.On("Upsert", mock.MatchedBy(func(timeout *entity.UserTimeout) bool {
		return timeout.UserID == "user-1" &&
			timeout.Message == "Spamming the feed" &&
			timeout.EndTime.Equal(moderationNow.Add(48*time.Hour))
	})).Return(nil)

	uc := newModerationUC(timeoutRepo, contentRepo)
	timeout, err := uc.SetTimeout("user-1", 48, "Spamming the feed")

	assert.NoError(t, err)
	assert.Equal(t, moderationNow.Add(48*time.Hour), timeout.EndTime)
	timeoutRepo.AssertExpectations(t)
}

func TestIsTimedOut_Active(t *testing.T) {
	timeoutRepo := new(MockTimeoutRepository)
	contentRepo := new(MockContentRepository)

	timeoutRepo.On("GetByUserID", "user-1").Return(&entity.UserTimeout{
		UserID:  "user-1",
		EndTime: moderationNow.Add(1 * time.Hour),
		Message: "Cool off",
	}, nil)

	uc := newModerationUC(timeoutRepo, contentRepo)
	timedOut, err := uc.IsTimedOut("user-1")

	assert.NoError(t, err)
	assert.True(t, timedOut)
}

func TestIsTimedOut_Expired(t *testing.T) {
	timeoutRepo := new(MockTimeoutRepository)
	contentRepo := new(MockContentRepository)

	timeoutRepo.On("GetByUserID", "user-1").Return(&entity.UserTimeout{
		UserID:  "user-1",
		EndTime: moderationNow.Add(-1 * time.Minute),
	}, nil)

	uc := newModerationUC(timeoutRepo, contentRepo)
	timedOut, err := uc.IsTimedOut("user-1")

	assert.NoError(t, err)
	assert.False(t, timedOut)
}

func TestTimeoutInfo_NoRow(t *testing.T) {
	timeoutRepo := new(MockTimeoutRepository)
	contentRepo := new(MockContentRepository)

	timeoutRepo.On("GetByUserID", "user-1").Return(nil, nil)

	uc := newModerationUC(timeoutRepo, contentRepo)
	info, err := uc.TimeoutInfo("user-1")

	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestTimeoutInfo_EndsExactlyNow(t *testing.T) {
	timeoutRepo := new(MockTimeoutRepository)
	contentRepo := new(MockContentRepository)

	timeoutRepo.On("GetByUserID", "user-1").Return(&entity.UserTimeout{
		UserID:  "user-1",
		EndTime: moderationNow,
	}, nil)

	uc := newModerationUC(timeoutRepo, contentRepo)
	info, err := uc.TimeoutInfo("user-1")

	assert.NoError(t, err)
	assert.Nil(t, info)
}

func TestModerationRemove_NoAgeGuard(t *testing.T) {
	timeoutRepo := new(MockTimeoutRepository)
	contentRepo := new(MockContentRepository)

	contentRepo.On("Delete", "item-1").Return(nil)

	uc := newModerationUC(timeoutRepo, contentRepo)
	err := uc.Remove("item-1")

	assert.NoError(t, err)
	contentRepo.AssertExpectations(t)
}

func TestRemoveAllFromCreator(t *testing.T) {
	timeoutRepo := new(MockTimeoutRepository)
	contentRepo := new(MockContentRepository)

	contentRepo.On("DeleteByCreator", "creator-1").Return(int64(3), nil)

	uc := newModerationUC(timeoutRepo, contentRepo)
	deleted, err := uc.RemoveAllFromCreator("creator-1")

	assert.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}
