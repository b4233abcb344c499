package persistent

import (
	"errors"

	"funfans/internal/entity"
	"funfans/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(item *entity.ContentItem) error
	GetByID(id string) (*entity.ContentItem, error)
	List(includeHidden bool, tag string, limit, offset int) ([]*entity.ContentItem, error)
	Delete(id string) error
	SetHidden(id string, hidden bool) error
	SetHiddenByCreator(creatorID string, hidden bool) error
	DeleteByCreator(creatorID string) (int64, error)

	IsLiked(userID, itemID string) (bool, error)
	CreateLike(userID, itemID string) error
	DeleteLike(userID, itemID string) error
	GetLikeCount(itemID string) (int64, error)
	GetLikerIDs(itemID string) ([]string, error)

	CreateShare(userID, itemID string) error
	GetSharerIDs(itemID string) ([]string, error)

	GetReaction(userID, itemID string) (string, error)
	UpsertReaction(userID, itemID, emoji string) error
	DeleteReaction(userID, itemID string) error
	GetReactions(itemID string) (map[string]string, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(item *entity.ContentItem) error {
	m := &model.ContentItemModel{
		ID:        item.ID,
		CreatorID: item.CreatorID,
		Title:     item.Title,
		Price:     item.Price,
		BlurLevel: item.BlurLevel,
		Tags:      joinTags(item.Tags),
		IsHidden:  item.IsHidden,
	}
	for _, med := range item.Media {
		m.Media = append(m.Media, model.MediaModel{
			ID:           med.ID,
			MediaType:    string(med.MediaType),
			StoragePath:  med.StoragePath,
			DisplayOrder: med.DisplayOrder,
		})
	}

	if err := r.db.Create(m).Error; err != nil {
		return err
	}

	item.ID = m.ID
	item.CreatedAt = m.CreatedAt
	return nil
}

func (r *contentRepository) GetByID(id string) (*entity.ContentItem, error) {
	var m model.ContentItemModel
	err := r.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToContentItemEntity(&m), nil
}

func (r *contentRepository) List(includeHidden bool, tag string, limit, offset int) ([]*entity.ContentItem, error) {
	query := r.db.Preload("Media", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order ASC")
	}).Order("created_at DESC")

	if !includeHidden {
		query = query.Where("is_hidden = ?", false)
	}
	if tag != "" {
		// Tags are stored comma separated; match whole tags, not substrings.
		query = query.Where(
			"tags = ? OR tags LIKE ? OR tags LIKE ? OR tags LIKE ?",
			tag, tag+",%", "%,"+tag, "%,"+tag+",%",
		)
	}
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var rows []model.ContentItemModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entity.ContentItem, len(rows))
	for i := range rows {
		items[i] = ToContentItemEntity(&rows[i])
	}
	return items, nil
}

func (r *contentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_item_id = ?", id).Delete(&model.MediaModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.ContentItemModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrNotFound
		}
		return nil
	})
}

func (r *contentRepository) SetHidden(id string, hidden bool) error {
	res := r.db.Model(&model.ContentItemModel{}).Where("id = ?", id).Update("is_hidden", hidden)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *contentRepository) SetHiddenByCreator(creatorID string, hidden bool) error {
	return r.db.Model(&model.ContentItemModel{}).
		Where("creator_id = ?", creatorID).
		Update("is_hidden", hidden).Error
}

func (r *contentRepository) DeleteByCreator(creatorID string) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var ids []string
		if err := tx.Model(&model.ContentItemModel{}).
			Where("creator_id = ?", creatorID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("content_item_id IN ?", ids).Delete(&model.MediaModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&model.ContentItemModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (r *contentRepository) IsLiked(userID, itemID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("user_id = ? AND content_item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *contentRepository) CreateLike(userID, itemID string) error {
	like := &model.LikeModel{
		UserID:        userID,
		ContentItemID: itemID,
	}
	return r.db.Create(like).Error
}

func (r *contentRepository) DeleteLike(userID, itemID string) error {
	return r.db.
		Where("user_id = ? AND content_item_id = ?", userID, itemID).
		Delete(&model.LikeModel{}).Error
}

func (r *contentRepository) GetLikeCount(itemID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).
		Where("content_item_id = ?", itemID).
		Count(&count).Error
	return count, err
}

func (r *contentRepository) GetLikerIDs(itemID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.LikeModel{}).
		Where("content_item_id = ?", itemID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *contentRepository) CreateShare(userID, itemID string) error {
	var count int64
	err := r.db.Model(&model.ShareModel{}).
		Where("user_id = ? AND content_item_id = ?", userID, itemID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	share := &model.ShareModel{
		UserID:        userID,
		ContentItemID: itemID,
	}
	return r.db.Create(share).Error
}

func (r *contentRepository) GetSharerIDs(itemID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.ShareModel{}).
		Where("content_item_id = ?", itemID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *contentRepository) GetReaction(userID, itemID string) (string, error) {
	var reaction model.ReactionModel
	err := r.db.
		Where("user_id = ? AND content_item_id = ?", userID, itemID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return reaction.Emoji, nil
}

func (r *contentRepository) UpsertReaction(userID, itemID, emoji string) error {
	var existing model.ReactionModel
	err := r.db.
		Where("user_id = ? AND content_item_id = ?", userID, itemID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reaction := &model.ReactionModel{
				UserID:        userID,
				ContentItemID: itemID,
				Emoji:         emoji,
			}
			return r.db.Create(reaction).Error
		}
		return err
	}

	return r.db.Model(&existing).Update("emoji", emoji).Error
}

func (r *contentRepository) DeleteReaction(userID, itemID string) error {
	return r.db.
		Where("user_id = ? AND content_item_id = ?", userID, itemID).
		Delete(&model.ReactionModel{}).Error
}

func (r *contentRepository) GetReactions(itemID string) (map[string]string, error) {
	var rows []model.ReactionModel
	if err := r.db.Where("content_item_id = ?", itemID).Find(&rows).Error; err != nil {
		return nil, err
	}

	reactions := make(map[string]string, len(rows))
	for _, row := range rows {
		reactions[row.UserID] = row.Emoji
	}
	return reactions, nil
}
