package implementation

import (
	"context"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/mapper"
	"crowlands-be/internal/model"
	"crowlands-be/internal/repository/contract"
	"crowlands-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GenerationEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GrimoireMapper
}

func NewGenerationEventRepository(db *gorm.DB) contract.GenerationEventRepository {
	return &GenerationEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewGrimoireMapper(),
	}
}

func (r *GenerationEventRepositoryImpl) Create(ctx context.Context, event *entity.GenerationEvent) error {
	modelEvent := r.mapper.GenerationEventToModel(event)
	if err := r.db.WithContext(ctx).Create(modelEvent).Error; err != nil {
		return err
	}
	*event = *r.mapper.GenerationEventToEntity(modelEvent)
	return nil
}

func (r *GenerationEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationEvent, error) {
	var modelEvents []*model.GenerationEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&modelEvents).Error; err != nil {
		return nil, err
	}

	events := make([]*entity.GenerationEvent, len(modelEvents))
	for i, e := range modelEvents {
		events[i] = r.mapper.GenerationEventToEntity(e)
	}
	return events, nil
}

func (r *GenerationEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.GenerationEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
