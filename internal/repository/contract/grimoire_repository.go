package contract

import (
	"context"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"

	"github.com/google/uuid"
)

type GrimoireRepository interface {
	Create(ctx context.Context, spell *entity.SavedSpell) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedSpell, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedSpell, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
