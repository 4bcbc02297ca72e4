package mapper

import (
	"encoding/json"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/model"

	"gorm.io/datatypes"
)

type GrimoireMapper struct{}

func NewGrimoireMapper() *GrimoireMapper {
	return &GrimoireMapper{}
}

func (m *GrimoireMapper) ToEntity(s *model.SavedSpell) *entity.SavedSpell {
	if s == nil {
		return nil
	}
	return &entity.SavedSpell{
		Id:             s.Id,
		UserId:         s.UserId,
		SpellData:      json.RawMessage(s.SpellData),
		ArchetypeId:    s.ArchetypeId,
		ArchetypeName:  s.ArchetypeName,
		ArchetypeTitle: s.ArchetypeTitle,
		ImageData:      s.ImageData,
		Title:          s.Title,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *GrimoireMapper) ToModel(s *entity.SavedSpell) *model.SavedSpell {
	if s == nil {
		return nil
	}
	return &model.SavedSpell{
		Id:             s.Id,
		UserId:         s.UserId,
		SpellData:      datatypes.JSON(s.SpellData),
		ArchetypeId:    s.ArchetypeId,
		ArchetypeName:  s.ArchetypeName,
		ArchetypeTitle: s.ArchetypeTitle,
		ImageData:      s.ImageData,
		Title:          s.Title,
		CreatedAt:      s.CreatedAt,
	}
}

func (m *GrimoireMapper) ToEntities(spells []*model.SavedSpell) []*entity.SavedSpell {
	entities := make([]*entity.SavedSpell, len(spells))
	for i, s := range spells {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *GrimoireMapper) FavoriteToEntity(f *model.Favorite) *entity.Favorite {
	if f == nil {
		return nil
	}
	return &entity.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		ItemType:  f.ItemType,
		ItemId:    f.ItemId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *GrimoireMapper) FavoriteToModel(f *entity.Favorite) *model.Favorite {
	if f == nil {
		return nil
	}
	return &model.Favorite{
		Id:        f.Id,
		UserId:    f.UserId,
		ItemType:  f.ItemType,
		ItemId:    f.ItemId,
		CreatedAt: f.CreatedAt,
	}
}

func (m *GrimoireMapper) FavoritesToEntities(fs []*model.Favorite) []*entity.Favorite {
	entities := make([]*entity.Favorite, len(fs))
	for i, f := range fs {
		entities[i] = m.FavoriteToEntity(f)
	}
	return entities
}

func (m *GrimoireMapper) GenerationEventToModel(e *entity.GenerationEvent) *model.GenerationEvent {
	if e == nil {
		return nil
	}
	return &model.GenerationEvent{
		Id:          e.Id,
		UserId:      e.UserId,
		SessionId:   e.SessionId,
		ArchetypeId: e.ArchetypeId,
		ParseError:  e.ParseError,
		ImageMade:   e.ImageMade,
		LatencyMs:   e.LatencyMs,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *GrimoireMapper) GenerationEventToEntity(e *model.GenerationEvent) *entity.GenerationEvent {
	if e == nil {
		return nil
	}
	return &entity.GenerationEvent{
		Id:          e.Id,
		UserId:      e.UserId,
		SessionId:   e.SessionId,
		ArchetypeId: e.ArchetypeId,
		ParseError:  e.ParseError,
		ImageMade:   e.ImageMade,
		LatencyMs:   e.LatencyMs,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *GrimoireMapper) OrderToEntity(o *model.SubscriptionOrder) *entity.SubscriptionOrder {
	if o == nil {
		return nil
	}
	return &entity.SubscriptionOrder{
		Id:        o.Id,
		UserId:    o.UserId,
		Amount:    o.Amount,
		Status:    entity.SubscriptionOrderStatus(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func (m *GrimoireMapper) OrderToModel(o *entity.SubscriptionOrder) *model.SubscriptionOrder {
	if o == nil {
		return nil
	}
	return &model.SubscriptionOrder{
		Id:        o.Id,
		UserId:    o.UserId,
		Amount:    o.Amount,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
