package contract

import (
	"context"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/repository/specification"
)

// The five reference repositories share a shape: seeder writes, read-only
// everywhere else.

type DeityRepository interface {
	Create(ctx context.Context, deity *entity.Deity) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Deity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Deity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type FigureRepository interface {
	Create(ctx context.Context, figure *entity.HistoricalFigure) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.HistoricalFigure, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.HistoricalFigure, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SiteRepository interface {
	Create(ctx context.Context, site *entity.SacredSite) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SacredSite, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SacredSite, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type RitualRepository interface {
	Create(ctx context.Context, ritual *entity.Ritual) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Ritual, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Ritual, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type TimelineRepository interface {
	Create(ctx context.Context, event *entity.TimelineEvent) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.TimelineEvent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TimelineEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
