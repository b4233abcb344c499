package persistent

import (
	"strings"

	"funfans/internal/entity"
	"funfans/internal/model"
)

func ToProfileEntity(m *model.ProfileModel) *entity.Profile {
	if m == nil {
		return nil
	}

	return &entity.Profile{
		ID:                m.ID,
		Username:          m.Username,
		ProfilePictureURL: m.ProfilePictureURL,
		VitrineSlug:       m.VitrineSlug,
		Bio:               m.Bio,
		Role:              entity.ParseRole(m.Role),
		CreditsBalance:    m.CreditsBalance,
		EarnedBalance:     m.EarnedBalance,
		LastWithdrawalAt:  m.LastWithdrawalAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entity.TransactionType(m.Type),
		Amount:      m.Amount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToCreatorTransactionEntity(m *model.CreatorTransactionModel) *entity.CreatorTransaction {
	if m == nil {
		return nil
	}

	return &entity.CreatorTransaction{
		ID:             m.ID,
		CreatorID:      m.CreatorID,
		ContentItemID:  m.ContentItemID,
		Title:          m.Title,
		BuyerID:        m.BuyerID,
		AmountReceived: m.AmountReceived,
		OriginalPrice:  m.OriginalPrice,
		ImageCount:     m.ImageCount,
		VideoCount:     m.VideoCount,
		CreatedAt:      m.CreatedAt,
	}
}

func ToContentItemEntity(m *model.ContentItemModel) *entity.ContentItem {
	if m == nil {
		return nil
	}

	item := &entity.ContentItem{
		ID:        m.ID,
		CreatorID: m.CreatorID,
		Title:     m.Title,
		Price:     m.Price,
		BlurLevel: m.BlurLevel,
		Tags:      splitTags(m.Tags),
		IsHidden:  m.IsHidden,
		CreatedAt: m.CreatedAt,
		LikedBy:   []string{},
		SharedBy:  []string{},
		Reactions: map[string]string{},
	}

	for _, med := range m.Media {
		item.Media = append(item.Media, entity.Media{
			ID:           med.ID,
			MediaType:    entity.MediaType(med.MediaType),
			StoragePath:  med.StoragePath,
			DisplayOrder: med.DisplayOrder,
		})
		switch entity.MediaType(med.MediaType) {
		case entity.MediaTypeImage:
			item.MediaCount.Images++
		case entity.MediaTypeVideo:
			item.MediaCount.Videos++
		}
	}

	return item
}

func ToSubscriptionEntity(m *model.SubscriptionModel) *entity.UserSubscription {
	if m == nil {
		return nil
	}

	return &entity.UserSubscription{
		UserID:        m.UserID,
		PlanID:        m.PlanID,
		PlanName:      m.PlanName,
		PriceUSD:      m.PriceUSD,
		Credits:       m.Credits,
		RenewsOn:      m.RenewsOn,
		PaymentMethod: m.PaymentMethod,
	}
}

func ToPlanEntity(m *model.SubscriptionPlanModel) *entity.SubscriptionPlan {
	if m == nil {
		return nil
	}

	return &entity.SubscriptionPlan{
		ID:       m.ID,
		Name:     m.Name,
		PriceUSD: m.PriceUSD,
		Credits:  m.Credits,
	}
}

func ToPackageEntity(m *model.CreditPackageModel) *entity.CreditPackage {
	if m == nil {
		return nil
	}

	return &entity.CreditPackage{
		ID:       m.ID,
		Name:     m.Name,
		PriceUSD: m.PriceUSD,
		Credits:  m.Credits,
	}
}

func ToTimeoutEntity(m *model.UserTimeoutModel) *entity.UserTimeout {
	if m == nil {
		return nil
	}

	return &entity.UserTimeout{
		UserID:  m.UserID,
		EndTime: m.EndTime,
		Message: m.Message,
	}
}

func splitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}
