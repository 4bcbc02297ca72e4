package mapper

import (
	"crowlands-be/internal/entity"
	"crowlands-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:                   u.Id,
		Email:                u.Email,
		Name:                 u.Name,
		PasswordHash:         u.PasswordHash,
		SubscriptionTier:     entity.SubscriptionTier(u.SubscriptionTier),
		SubscriptionStatus:   entity.SubscriptionStatus(u.SubscriptionStatus),
		SubscriptionStart:    u.SubscriptionStart,
		SubscriptionEnd:      u.SubscriptionEnd,
		SpellGenerationCount: u.SpellGenerationCount,
		SpellGenerationReset: u.SpellGenerationReset,
		LifetimeGenerated:    u.LifetimeGenerated,
		LifetimeSaved:        u.LifetimeSaved,
		CreatedAt:            u.CreatedAt,
		LastLoginAt:          u.LastLoginAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:                   u.Id,
		Email:                u.Email,
		Name:                 u.Name,
		PasswordHash:         u.PasswordHash,
		SubscriptionTier:     string(u.SubscriptionTier),
		SubscriptionStatus:   string(u.SubscriptionStatus),
		SubscriptionStart:    u.SubscriptionStart,
		SubscriptionEnd:      u.SubscriptionEnd,
		SpellGenerationCount: u.SpellGenerationCount,
		SpellGenerationReset: u.SpellGenerationReset,
		LifetimeGenerated:    u.LifetimeGenerated,
		LifetimeSaved:        u.LifetimeSaved,
		CreatedAt:            u.CreatedAt,
		LastLoginAt:          u.LastLoginAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}
