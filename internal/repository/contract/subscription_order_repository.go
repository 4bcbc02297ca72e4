package contract

import (
	"context"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionOrderRepository interface {
	Create(ctx context.Context, order *entity.SubscriptionOrder) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SubscriptionOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionOrderStatus) error
}
