package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"funfans/internal/entity"
	"funfans/internal/repo/persistent"
	"funfans/pkg/config"
	"funfans/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// deleteGracePeriod protects recent buyers: creators can only remove their
// own content once it has been up for a day.
const deleteGracePeriod = 24 * time.Hour

// MediaStorage is the slice of the object storage client the content flow
// needs. Satisfied by *storage.Client.
type MediaStorage interface {
	UploadFile(key string, file multipart.File, contentType string) (string, error)
	ResolveMediaURL(storagePath string) string
}

type MediaUpload struct {
	File        multipart.File
	ContentType string
	MediaType   entity.MediaType
}

type CreateContentInput struct {
	Title     string
	Price     float64
	BlurLevel int
	Tags      []string
	Uploads   []MediaUpload
}

type ContentUseCase interface {
	Create(creatorID string, input CreateContentInput) (*entity.ContentItem, error)
	Get(itemID, viewerID string, includeHidden bool) (*entity.ContentItem, error)
	List(viewerID string, includeHidden bool, tag string, limit, offset int) ([]*entity.ContentItem, error)
	Delete(itemID, callerID string) error
	ToggleLike(userID, itemID string) (bool, error)
	ToggleReaction(userID, itemID, emoji string) (bool, error)
	Share(userID, itemID string) error
}

type contentUseCase struct {
	contentRepo persistent.ContentRepository
	ledgerRepo  persistent.LedgerRepository
	storage     MediaStorage
	redisClient *redis.Client
	cfg         *config.Config
	logger      *logger.Logger
	now         func() time.Time
}

func NewContentUseCase(
	contentRepo persistent.ContentRepository,
	ledgerRepo persistent.LedgerRepository,
	storage MediaStorage,
	redisClient *redis.Client,
	cfg *config.Config,
	logger *logger.Logger,
) ContentUseCase {
	return &contentUseCase{
		contentRepo: contentRepo,
		ledgerRepo:  ledgerRepo,
		storage:     storage,
		redisClient: redisClient,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *contentUseCase) Create(creatorID string, input CreateContentInput) (*entity.ContentItem, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	images, videos := 0, 0
	for _, upload := range input.Uploads {
		switch upload.MediaType {
		case entity.MediaTypeImage:
			images++
		case entity.MediaTypeVideo:
			videos++
		default:
			return nil, fmt.Errorf("unsupported media type: %s", upload.MediaType)
		}
	}
	if images > uc.cfg.MaxImagesPerItem {
		return nil, fmt.Errorf("too many images: max %d", uc.cfg.MaxImagesPerItem)
	}
	if videos > uc.cfg.MaxVideosPerItem {
		return nil, fmt.Errorf("too many videos: max %d", uc.cfg.MaxVideosPerItem)
	}

	item := &entity.ContentItem{
		CreatorID:  creatorID,
		Title:      input.Title,
		Price:      input.Price,
		BlurLevel:  input.BlurLevel,
		Tags:       input.Tags,
		MediaCount: entity.MediaCount{Images: images, Videos: videos},
	}

	for order, upload := range input.Uploads {
		key := fmt.Sprintf("content/%s", uuid.New().String())
		if _, err := uc.storage.UploadFile(key, upload.File, upload.ContentType); err != nil {
			uc.logger.Error("Failed to upload media for creator %s: %v", creatorID, err)
			return nil, fmt.Errorf("failed to upload media: %w", err)
		}
		item.Media = append(item.Media, entity.Media{
			MediaType:    upload.MediaType,
			StoragePath:  key,
			DisplayOrder: order,
		})
	}

	if err := uc.contentRepo.Create(item); err != nil {
		uc.logger.Error("Failed to create content for %s: %v", creatorID, err)
		return nil, fmt.Errorf("failed to create content: %w", err)
	}

	uc.logger.Info("Content item %s created by %s", item.ID, creatorID)
	uc.resolveMedia(item)
	return item, nil
}

func (uc *contentUseCase) Get(itemID, viewerID string, includeHidden bool) (*entity.ContentItem, error) {
	item, err := uc.contentRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item.IsHidden && !includeHidden {
		return nil, entity.ErrNotFound
	}

	unlocked := map[string]bool{}
	if viewerID != "" {
		ok, err := uc.ledgerRepo.IsUnlocked(viewerID, itemID)
		if err != nil {
			return nil, err
		}
		unlocked[itemID] = ok
	}
	uc.decorate(item, unlocked)
	return item, nil
}

func (uc *contentUseCase) List(viewerID string, includeHidden bool, tag string, limit, offset int) ([]*entity.ContentItem, error) {
	items, err := uc.contentRepo.List(includeHidden, tag, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list content: %v", err)
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	unlocked := map[string]bool{}
	if viewerID != "" {
		ids, err := uc.ledgerRepo.GetUnlockedContentIDs(viewerID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			unlocked[id] = true
		}
	}

	for _, item := range items {
		uc.decorate(item, unlocked)
	}
	return items, nil
}

// resolveMedia turns storage paths into serving URLs. Media counts are owned
// by whoever built the item, so repeated decoration cannot inflate them.
func (uc *contentUseCase) resolveMedia(item *entity.ContentItem) {
	for i := range item.Media {
		item.Media[i].URL = uc.storage.ResolveMediaURL(item.Media[i].StoragePath)
	}
}

// decorate fills the projection fields: resolved media URLs, the social sets
// and the viewer's unlocked flag.
func (uc *contentUseCase) decorate(item *entity.ContentItem, unlocked map[string]bool) {
	uc.resolveMedia(item)

	if likers, err := uc.contentRepo.GetLikerIDs(item.ID); err == nil {
		item.LikedBy = likers
	}
	if sharers, err := uc.contentRepo.GetSharerIDs(item.ID); err == nil {
		item.SharedBy = sharers
	}
	if reactions, err := uc.contentRepo.GetReactions(item.ID); err == nil {
		item.Reactions = reactions
	}
	item.Unlocked = unlocked[item.ID]
}

// Delete lets the owner take down their own content, but only after the
// grace period. Moderation removal has no such restriction.
func (uc *contentUseCase) Delete(itemID, callerID string) error {
	item, err := uc.contentRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item.CreatorID != callerID {
		return entity.ErrNotOwner
	}
	if uc.now().Sub(item.CreatedAt) <= deleteGracePeriod {
		return entity.ErrContentTooYoung
	}

	if err := uc.contentRepo.Delete(itemID); err != nil {
		uc.logger.Error("Failed to delete content %s: %v", itemID, err)
		return err
	}
	return nil
}

// ToggleLike flips the caller's like and reports the resulting state.
// The Redis counter is advisory; the likes table stays authoritative.
func (uc *contentUseCase) ToggleLike(userID, itemID string) (bool, error) {
	if _, err := uc.contentRepo.GetByID(itemID); err != nil {
		return false, err
	}

	liked, err := uc.contentRepo.IsLiked(userID, itemID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := uc.contentRepo.DeleteLike(userID, itemID); err != nil {
			return false, err
		}
		uc.bumpLikeCounter(itemID, -1)
		return false, nil
	}

	if err := uc.contentRepo.CreateLike(userID, itemID); err != nil {
		return false, err
	}
	uc.bumpLikeCounter(itemID, 1)
	return true, nil
}

func (uc *contentUseCase) bumpLikeCounter(itemID string, delta int64) {
	if uc.redisClient == nil {
		return
	}
	key := fmt.Sprintf("content:likes:%s", itemID)
	if err := uc.redisClient.IncrBy(context.Background(), key, delta).Err(); err != nil {
		uc.logger.Warn("Failed to update like counter for %s: %v", itemID, err)
	}
}

// ToggleReaction keeps at most one emoji per user per item. Repeating the
// same emoji clears it; a different emoji replaces the previous one.
func (uc *contentUseCase) ToggleReaction(userID, itemID, emoji string) (bool, error) {
	if emoji == "" {
		return false, fmt.Errorf("emoji is required")
	}
	if _, err := uc.contentRepo.GetByID(itemID); err != nil {
		return false, err
	}

	current, err := uc.contentRepo.GetReaction(userID, itemID)
	if err != nil {
		return false, err
	}

	if current == emoji {
		if err := uc.contentRepo.DeleteReaction(userID, itemID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := uc.contentRepo.UpsertReaction(userID, itemID, emoji); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *contentUseCase) Share(userID, itemID string) error {
	if _, err := uc.contentRepo.GetByID(itemID); err != nil {
		return err
	}
	return uc.contentRepo.CreateShare(userID, itemID)
}
