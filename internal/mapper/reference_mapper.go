package mapper

import (
	"crowlands-be/internal/entity"
	"crowlands-be/internal/model"
)

type ReferenceMapper struct{}

func NewReferenceMapper() *ReferenceMapper {
	return &ReferenceMapper{}
}

func (m *ReferenceMapper) DeityToEntity(d *model.Deity) *entity.Deity {
	if d == nil {
		return nil
	}
	return &entity.Deity{
		Id:                  d.Id,
		Name:                d.Name,
		Origin:              d.Origin,
		Description:         d.Description,
		History:             d.History,
		AssociatedPractices: d.AssociatedPractices,
		ImageURL:            d.ImageURL,
		TimePeriod:          d.TimePeriod,
	}
}

func (m *ReferenceMapper) DeityToModel(d *entity.Deity) *model.Deity {
	if d == nil {
		return nil
	}
	return &model.Deity{
		Id:                  d.Id,
		Name:                d.Name,
		Origin:              d.Origin,
		Description:         d.Description,
		History:             d.History,
		AssociatedPractices: d.AssociatedPractices,
		ImageURL:            d.ImageURL,
		TimePeriod:          d.TimePeriod,
	}
}

func (m *ReferenceMapper) DeitiesToEntities(ds []*model.Deity) []*entity.Deity {
	entities := make([]*entity.Deity, len(ds))
	for i, d := range ds {
		entities[i] = m.DeityToEntity(d)
	}
	return entities
}

func (m *ReferenceMapper) FigureToEntity(f *model.HistoricalFigure) *entity.HistoricalFigure {
	if f == nil {
		return nil
	}
	return &entity.HistoricalFigure{
		Id:              f.Id,
		Name:            f.Name,
		BirthDeath:      f.BirthDeath,
		Bio:             f.Bio,
		Contributions:   f.Contributions,
		AssociatedWorks: f.AssociatedWorks,
		ImageURL:        f.ImageURL,
	}
}

func (m *ReferenceMapper) FigureToModel(f *entity.HistoricalFigure) *model.HistoricalFigure {
	if f == nil {
		return nil
	}
	return &model.HistoricalFigure{
		Id:              f.Id,
		Name:            f.Name,
		BirthDeath:      f.BirthDeath,
		Bio:             f.Bio,
		Contributions:   f.Contributions,
		AssociatedWorks: f.AssociatedWorks,
		ImageURL:        f.ImageURL,
	}
}

func (m *ReferenceMapper) FiguresToEntities(fs []*model.HistoricalFigure) []*entity.HistoricalFigure {
	entities := make([]*entity.HistoricalFigure, len(fs))
	for i, f := range fs {
		entities[i] = m.FigureToEntity(f)
	}
	return entities
}

func (m *ReferenceMapper) SiteToEntity(s *model.SacredSite) *entity.SacredSite {
	if s == nil {
		return nil
	}
	return &entity.SacredSite{
		Id:       s.Id,
		Name:     s.Name,
		Location: s.Location,
		Country:  s.Country,
		Coordinates: entity.Coordinates{
			Lat: s.Lat,
			Lng: s.Lng,
		},
		HistoricalSignificance: s.HistoricalSignificance,
		TimePeriod:             s.TimePeriod,
		ImageURL:               s.ImageURL,
	}
}

func (m *ReferenceMapper) SiteToModel(s *entity.SacredSite) *model.SacredSite {
	if s == nil {
		return nil
	}
	return &model.SacredSite{
		Id:                     s.Id,
		Name:                   s.Name,
		Location:               s.Location,
		Country:                s.Country,
		Lat:                    s.Coordinates.Lat,
		Lng:                    s.Coordinates.Lng,
		HistoricalSignificance: s.HistoricalSignificance,
		TimePeriod:             s.TimePeriod,
		ImageURL:               s.ImageURL,
	}
}

func (m *ReferenceMapper) SitesToEntities(ss []*model.SacredSite) []*entity.SacredSite {
	entities := make([]*entity.SacredSite, len(ss))
	for i, s := range ss {
		entities[i] = m.SiteToEntity(s)
	}
	return entities
}

func (m *ReferenceMapper) RitualToEntity(r *model.Ritual) *entity.Ritual {
	if r == nil {
		return nil
	}
	return &entity.Ritual{
		Id:               r.Id,
		Name:             r.Name,
		Description:      r.Description,
		DeityAssociation: r.DeityAssociation,
		TimePeriod:       r.TimePeriod,
		Source:           r.Source,
		Category:         r.Category,
	}
}

func (m *ReferenceMapper) RitualToModel(r *entity.Ritual) *model.Ritual {
	if r == nil {
		return nil
	}
	return &model.Ritual{
		Id:               r.Id,
		Name:             r.Name,
		Description:      r.Description,
		DeityAssociation: r.DeityAssociation,
		TimePeriod:       r.TimePeriod,
		Source:           r.Source,
		Category:         r.Category,
	}
}

func (m *ReferenceMapper) RitualsToEntities(rs []*model.Ritual) []*entity.Ritual {
	entities := make([]*entity.Ritual, len(rs))
	for i, r := range rs {
		entities[i] = m.RitualToEntity(r)
	}
	return entities
}

func (m *ReferenceMapper) TimelineEventToEntity(t *model.TimelineEvent) *entity.TimelineEvent {
	if t == nil {
		return nil
	}
	return &entity.TimelineEvent{
		Id:          t.Id,
		Year:        t.Year,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
	}
}

func (m *ReferenceMapper) TimelineEventToModel(t *entity.TimelineEvent) *model.TimelineEvent {
	if t == nil {
		return nil
	}
	return &model.TimelineEvent{
		Id:          t.Id,
		Year:        t.Year,
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
	}
}

func (m *ReferenceMapper) TimelineEventsToEntities(ts []*model.TimelineEvent) []*entity.TimelineEvent {
	entities := make([]*entity.TimelineEvent, len(ts))
	for i, t := range ts {
		entities[i] = m.TimelineEventToEntity(t)
	}
	return entities
}
