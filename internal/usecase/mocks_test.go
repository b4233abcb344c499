package usecase

import (
	"mime/multipart"
	"time"

	"funfans/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ExecutePurchase(buyerID string, item *entity.ContentItem, earnings float64) error {
	args := m.Called(buyerID, item, earnings)
	return args.Error(0)
}

func (m *MockLedgerRepository) AdjustBalance(userID string, amount float64, txType entity.TransactionType, description string) error {
	args := m.Called(userID, amount, txType, description)
	return args.Error(0)
}

func (m *MockLedgerRepository) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) GetCreatorTransactions(creatorID string, limit, offset int) ([]*entity.CreatorTransaction, error) {
	args := m.Called(creatorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CreatorTransaction), args.Error(1)
}

func (m *MockLedgerRepository) IsUnlocked(userID, contentItemID string) (bool, error) {
	args := m.Called(userID, contentItemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) GetUnlockedContentIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByID(id string) (*entity.Profile, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetBySlug(slug string) (*entity.Profile, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) List() ([]*entity.Profile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Profile), args.Error(1)
}

func (m *MockProfileRepository) Update(id string, update *entity.ProfileUpdate) error {
	args := m.Called(id, update)
	return args.Error(0)
}

func (m *MockProfileRepository) CreateFollower(followerID, followingID string) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteFollower(followerID, followingID string) error {
	args := m.Called(followerID, followingID)
	return args.Error(0)
}

func (m *MockProfileRepository) GetFollowerIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProfileRepository) GetFollowingIDs(userID string) ([]string, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProfileRepository) ClaimWithdrawal(userID string, now, earliestAllowed time.Time) error {
	args := m.Called(userID, now, earliestAllowed)
	return args.Error(0)
}

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Create(item *entity.ContentItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockContentRepository) GetByID(id string) (*entity.ContentItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ContentItem), args.Error(1)
}

func (m *MockContentRepository) List(includeHidden bool, tag string, limit, offset int) ([]*entity.ContentItem, error) {
	args := m.Called(includeHidden, tag, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ContentItem), args.Error(1)
}

func (m *MockContentRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockContentRepository) SetHidden(id string, hidden bool) error {
	args := m.Called(id, hidden)
	return args.Error(0)
}

func (m *MockContentRepository) SetHiddenByCreator(creatorID string, hidden bool) error {
	args := m.Called(creatorID, hidden)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteByCreator(creatorID string) (int64, error) {
	args := m.Called(creatorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) IsLiked(userID, itemID string) (bool, error) {
	args := m.Called(userID, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) CreateLike(userID, itemID string) error {
	args := m.Called(userID, itemID)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteLike(userID, itemID string) error {
	args := m.Called(userID, itemID)
	return args.Error(0)
}

func (m *MockContentRepository) GetLikeCount(itemID string) (int64, error) {
	args := m.Called(itemID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentRepository) GetLikerIDs(itemID string) ([]string, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockContentRepository) CreateShare(userID, itemID string) error {
	args := m.Called(userID, itemID)
	return args.Error(0)
}

func (m *MockContentRepository) GetSharerIDs(itemID string) ([]string, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockContentRepository) GetReaction(userID, itemID string) (string, error) {
	args := m.Called(userID, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockContentRepository) UpsertReaction(userID, itemID, emoji string) error {
	args := m.Called(userID, itemID, emoji)
	return args.Error(0)
}

func (m *MockContentRepository) DeleteReaction(userID, itemID string) error {
	args := m.Called(userID, itemID)
	return args.Error(0)
}

func (m *MockContentRepository) GetReactions(itemID string) (map[string]string, error) {
	args := m.Called(itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Upsert(sub *entity.UserSubscription) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) GetByUserID(userID string) (*entity.UserSubscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Delete(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListPlans() ([]*entity.SubscriptionPlan, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SubscriptionPlan), args.Error(1)
}

func (m *MockCatalogRepository) GetPlan(id string) (*entity.SubscriptionPlan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SubscriptionPlan), args.Error(1)
}

func (m *MockCatalogRepository) SavePlan(plan *entity.SubscriptionPlan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockCatalogRepository) ListPackages() ([]*entity.CreditPackage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CreditPackage), args.Error(1)
}

func (m *MockCatalogRepository) GetPackage(id string) (*entity.CreditPackage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CreditPackage), args.Error(1)
}

func (m *MockCatalogRepository) SavePackage(pkg *entity.CreditPackage) error {
	args := m.Called(pkg)
	return args.Error(0)
}

type MockTimeoutRepository struct {
	mock.Mock
}

func (m *MockTimeoutRepository) Upsert(timeout *entity.UserTimeout) error {
	args := m.Called(timeout)
	return args.Error(0)
}

func (m *MockTimeoutRepository) GetByUserID(userID string) (*entity.UserTimeout, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserTimeout), args.Error(1)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) UploadFile(key string, file multipart.File, contentType string) (string, error) {
	args := m.Called(key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) ResolveMediaURL(storagePath string) string {
	args := m.Called(storagePath)
	return args.String(0)
}
