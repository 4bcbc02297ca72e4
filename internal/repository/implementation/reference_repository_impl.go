package implementation

import (
	"context"
	"errors"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/mapper"
	"crowlands-be/internal/model"
	"crowlands-be/internal/repository/contract"
	"crowlands-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// --- Deities ---

type DeityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewDeityRepository(db *gorm.DB) contract.DeityRepository {
	return &DeityRepositoryImpl{db: db, mapper: mapper.NewReferenceMapper()}
}

func (r *DeityRepositoryImpl) Create(ctx context.Context, deity *entity.Deity) error {
	return r.db.WithContext(ctx).Create(r.mapper.DeityToModel(deity)).Error
}

func (r *DeityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deity, error) {
	var m model.Deity
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DeityToEntity(&m), nil
}

func (r *DeityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deity, error) {
	var ms []*model.Deity
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.DeitiesToEntities(ms), nil
}

func (r *DeityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Deity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- Historical Figures ---

type FigureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewFigureRepository(db *gorm.DB) contract.FigureRepository {
	return &FigureRepositoryImpl{db: db, mapper: mapper.NewReferenceMapper()}
}

func (r *FigureRepositoryImpl) Create(ctx context.Context, figure *entity.HistoricalFigure) error {
	return r.db.WithContext(ctx).Create(r.mapper.FigureToModel(figure)).Error
}

func (r *FigureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HistoricalFigure, error) {
	var m model.HistoricalFigure
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.FigureToEntity(&m), nil
}

func (r *FigureRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoricalFigure, error) {
	var ms []*model.HistoricalFigure
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.FiguresToEntities(ms), nil
}

func (r *FigureRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.HistoricalFigure{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- Sacred Sites ---

type SiteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewSiteRepository(db *gorm.DB) contract.SiteRepository {
	return &SiteRepositoryImpl{db: db, mapper: mapper.NewReferenceMapper()}
}

func (r *SiteRepositoryImpl) Create(ctx context.Context, site *entity.SacredSite) error {
	return r.db.WithContext(ctx).Create(r.mapper.SiteToModel(site)).Error
}

func (r *SiteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SacredSite, error) {
	var m model.SacredSite
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SiteToEntity(&m), nil
}

func (r *SiteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SacredSite, error) {
	var ms []*model.SacredSite
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.SitesToEntities(ms), nil
}

func (r *SiteRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.SacredSite{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- Rituals ---

type RitualRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewRitualRepository(db *gorm.DB) contract.RitualRepository {
	return &RitualRepositoryImpl{db: db, mapper: mapper.NewReferenceMapper()}
}

func (r *RitualRepositoryImpl) Create(ctx context.Context, ritual *entity.Ritual) error {
	return r.db.WithContext(ctx).Create(r.mapper.RitualToModel(ritual)).Error
}

func (r *RitualRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ritual, error) {
	var m model.Ritual
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RitualToEntity(&m), nil
}

func (r *RitualRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ritual, error) {
	var ms []*model.Ritual
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.RitualsToEntities(ms), nil
}

func (r *RitualRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Ritual{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --- Timeline ---

type TimelineRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReferenceMapper
}

func NewTimelineRepository(db *gorm.DB) contract.TimelineRepository {
	return &TimelineRepositoryImpl{db: db, mapper: mapper.NewReferenceMapper()}
}

func (r *TimelineRepositoryImpl) Create(ctx context.Context, event *entity.TimelineEvent) error {
	return r.db.WithContext(ctx).Create(r.mapper.TimelineEventToModel(event)).Error
}

func (r *TimelineRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TimelineEvent, error) {
	var m model.TimelineEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.TimelineEventToEntity(&m), nil
}

func (r *TimelineRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TimelineEvent, error) {
	var ms []*model.TimelineEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	return r.mapper.TimelineEventsToEntities(ms), nil
}

func (r *TimelineRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.TimelineEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
