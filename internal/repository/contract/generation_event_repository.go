package contract

import (
	"context"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"
)

type GenerationEventRepository interface {
	Create(ctx context.Context, event *entity.GenerationEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GenerationEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
