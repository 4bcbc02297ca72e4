package unitofwork

import (
	"context"

	"crowlands-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	GrimoireRepository() contract.GrimoireRepository
	FavoriteRepository() contract.FavoriteRepository

	DeityRepository() contract.DeityRepository
	FigureRepository() contract.FigureRepository
	SiteRepository() contract.SiteRepository
	RitualRepository() contract.RitualRepository
	TimelineRepository() contract.TimelineRepository

	GenerationEventRepository() contract.GenerationEventRepository
	SubscriptionOrderRepository() contract.SubscriptionOrderRepository
}
