package service

import (
	"context"

	"crowlands-be/internal/dto"
	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"
	"crowlands-be/internal/repository/unitofwork"
)

type IReferenceService interface {
	ListDeities(ctx context.Context) ([]dto.DeityResponse, error)
	GetDeity(ctx context.Context, id string) (*dto.DeityResponse, error)
	ListFigures(ctx context.Context) ([]dto.FigureResponse, error)
	GetFigure(ctx context.Context, id string) (*dto.FigureResponse, error)
	ListSites(ctx context.Context) ([]dto.SiteResponse, error)
	GetSite(ctx context.Context, id string) (*dto.SiteResponse, error)
	ListRituals(ctx context.Context, category string) ([]dto.RitualResponse, error)
	GetRitual(ctx context.Context, id string) (*dto.RitualResponse, error)
	ListTimeline(ctx context.Context) ([]dto.TimelineEventResponse, error)
}

type referenceService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewReferenceService(uowFactory unitofwork.RepositoryFactory) IReferenceService {
	return &referenceService{uowFactory: uowFactory}
}

func deityResponse(d *entity.Deity) dto.DeityResponse {
	return dto.DeityResponse{
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

func (s *referenceService) ListDeities(ctx context.Context) ([]dto.DeityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	deities, err := uow.DeityRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.DeityResponse, len(deities))
	for i, d := range deities {
		res[i] = deityResponse(d)
	}
	return res, nil
}

func (s *referenceService) GetDeity(ctx context.Context, id string) (*dto.DeityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	deity, err := uow.DeityRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil {
		return nil, err
	}
	if deity == nil {
		return nil, &dto.NotFoundError{Resource: "deity"}
	}
	res := deityResponse(deity)
	return &res, nil
}

func figureResponse(f *entity.HistoricalFigure) dto.FigureResponse {
	return dto.FigureResponse{
		Id:              f.Id,
		Name:            f.Name,
		BirthDeath:      f.BirthDeath,
		Bio:             f.Bio,
		Contributions:   f.Contributions,
		AssociatedWorks: f.AssociatedWorks,
		ImageURL:        f.ImageURL,
	}
}

func (s *referenceService) ListFigures(ctx context.Context) ([]dto.FigureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	figures, err := uow.FigureRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.FigureResponse, len(figures))
	for i, f := range figures {
		res[i] = figureResponse(f)
	}
	return res, nil
}

func (s *referenceService) GetFigure(ctx context.Context, id string) (*dto.FigureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	figure, err := uow.FigureRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil {
		return nil, err
	}
	if figure == nil {
		return nil, &dto.NotFoundError{Resource: "figure"}
	}
	res := figureResponse(figure)
	return &res, nil
}

func siteResponse(s *entity.SacredSite) dto.SiteResponse {
	return dto.SiteResponse{
		Id:       s.Id,
		Name:     s.Name,
		Location: s.Location,
		Country:  s.Country,
		Coordinates: dto.CoordinatesResponse{
			Lat: s.Coordinates.Lat,
			Lng: s.Coordinates.Lng,
		},
		HistoricalSignificance: s.HistoricalSignificance,
		TimePeriod:             s.TimePeriod,
		ImageURL:               s.ImageURL,
	}
}

func (s *referenceService) ListSites(ctx context.Context) ([]dto.SiteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sites, err := uow.SiteRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.SiteResponse, len(sites))
	for i, site := range sites {
		res[i] = siteResponse(site)
	}
	return res, nil
}

func (s *referenceService) GetSite(ctx context.Context, id string) (*dto.SiteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	site, err := uow.SiteRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, &dto.NotFoundError{Resource: "site"}
	}
	res := siteResponse(site)
	return &res, nil
}

func ritualResponse(r *entity.Ritual) dto.RitualResponse {
	return dto.RitualResponse{
		Id:               r.Id,
		Name:             r.Name,
		Description:      r.Description,
		DeityAssociation: r.DeityAssociation,
		TimePeriod:       r.TimePeriod,
		Source:           r.Source,
		Category:         r.Category,
	}
}

func (s *referenceService) ListRituals(ctx context.Context, category string) ([]dto.RitualResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	var specs []specification.Specification
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}

	rituals, err := uow.RitualRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]dto.RitualResponse, len(rituals))
	for i, r := range rituals {
		res[i] = ritualResponse(r)
	}
	return res, nil
}

func (s *referenceService) GetRitual(ctx context.Context, id string) (*dto.RitualResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ritual, err := uow.RitualRepository().FindOne(ctx, specification.ByStringID{ID: id})
	if err != nil {
		return nil, err
	}
	if ritual == nil {
		return nil, &dto.NotFoundError{Resource: "ritual"}
	}
	res := ritualResponse(ritual)
	return &res, nil
}

func (s *referenceService) ListTimeline(ctx context.Context) ([]dto.TimelineEventResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	events, err := uow.TimelineRepository().FindAll(ctx, specification.OrderBy{Field: "year"})
	if err != nil {
		return nil, err
	}
	res := make([]dto.TimelineEventResponse, len(events))
	for i, e := range events {
		res[i] = dto.TimelineEventResponse{
			Id:          e.Id,
			Year:        e.Year,
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
		}
	}
	return res, nil
}
