package implementation

import (
	"context"
	"errors"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/mapper"
	"crowlands-be/internal/model"
	"crowlands-be/internal/repository/contract"
	"crowlands-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionOrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GrimoireMapper
}

func NewSubscriptionOrderRepository(db *gorm.DB) contract.SubscriptionOrderRepository {
	return &SubscriptionOrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewGrimoireMapper(),
	}
}

func (r *SubscriptionOrderRepositoryImpl) Create(ctx context.Context, order *entity.SubscriptionOrder) error {
	modelOrder := r.mapper.OrderToModel(order)
	if err := r.db.WithContext(ctx).Create(modelOrder).Error; err != nil {
		return err
	}
	*order = *r.mapper.OrderToEntity(modelOrder)
	return nil
}

func (r *SubscriptionOrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionOrder, error) {
	var modelOrder model.SubscriptionOrder
	query := applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.OrderToEntity(&modelOrder), nil
}

func (r *SubscriptionOrderRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionOrderStatus) error {
	return r.db.WithContext(ctx).Model(&model.SubscriptionOrder{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
