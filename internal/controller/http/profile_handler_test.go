package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"funfans/internal/entity"
	"funfans/internal/usecase"
	"funfans/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProfileUseCase is a mock implementation of ProfileUseCase
type MockProfileUseCase struct {
	mock.Mock
}

func (m *MockProfileUseCase) Get(userID string) (*entity.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileUseCase) GetBySlug(slug string) (*entity.Profile, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileUseCase) List() ([]*entity.Profile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockProfileUseCase) Update(userID string, update *entity.ProfileUpdate) (*entity.Profile, error) {
	args := m.Called(userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileUseCase) Follow(followerID, targetID string) error {
	args := m.Called(followerID, targetID)
	return args.Error(0)
}

func (m *MockProfileUseCase) Unfollow(followerID, targetID string) error {
	args := m.Called(followerID, targetID)
	return args.Error(0)
}

var _ usecase.ProfileUseCase = (*MockProfileUseCase)(nil)

func TestGetProfileHandler(t *testing.T) {
	mockUseCase := new(MockProfileUseCase)
	handler := NewProfileHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/profiles/:user_id", handler.Get)

	mockUseCase.On("Get", "user-123").Return(&entity.Profile{
		ID:       "user-123",
		Username: "ana_creates",
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles/user-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ana_creates", response["username"])
}

func TestGetProfileHandler_NotFound(t *testing.T) {
	mockUseCase := new(MockProfileUseCase)
	handler := NewProfileHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/profiles/:user_id", handler.Get)

	mockUseCase.On("Get", "ghost").Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/profiles/ghost", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	mockUseCase := new(MockProfileUseCase)
	handler := NewProfileHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/profiles/me", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Update(c)
	})

	bio := "new bio"
	mockUseCase.On("Update", "user-123", &entity.ProfileUpdate{Bio: &bio}).Return(&entity.Profile{
		ID:  "user-123",
		Bio: bio,
	}, nil)

	body := `{"bio":"new bio"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/profiles/me", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestFollowHandler(t *testing.T) {
	mockUseCase := new(MockProfileUseCase)
	handler := NewProfileHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/profiles/:user_id/follow", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.Follow(c)
	})

	mockUseCase.On("Follow", "user-123", "user-456").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/profiles/user-456/follow", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetBySlugHandler_NotFound(t *testing.T) {
	mockUseCase := new(MockProfileUseCase)
	handler := NewProfileHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/vitrine/:slug", handler.GetBySlug)

	mockUseCase.On("GetBySlug", "nobody").Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/vitrine/nobody", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
