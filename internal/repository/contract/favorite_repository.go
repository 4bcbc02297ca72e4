package contract

import (
	"context"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FavoriteRepository interface {
	// Add is idempotent: adding an existing favorite is a no-op, not an error.
	Add(ctx context.Context, favorite *entity.Favorite) error
	Remove(ctx context.Context, userId uuid.UUID, itemType, itemId string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error)
	Exists(ctx context.Context, userId uuid.UUID, itemType, itemId string) (bool, error)
}
