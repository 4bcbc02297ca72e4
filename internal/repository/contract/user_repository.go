package contract

import (
	"context"
	"time"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Business Specific
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	// RecordGeneration atomically bumps both the period counter and the
	// lifetime counter in one UPDATE.
	RecordGeneration(ctx context.Context, id uuid.UUID) error
	IncrementSavedCount(ctx context.Context, id uuid.UUID) error
	ResetGenerationCount(ctx context.Context, id uuid.UUID, at time.Time) error

	SetSubscription(ctx context.Context, id uuid.UUID, tier entity.SubscriptionTier, status entity.SubscriptionStatus, start, end *time.Time) error
}
