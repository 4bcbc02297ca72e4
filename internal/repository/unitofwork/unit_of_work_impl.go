package unitofwork

import (
	"context"
	"fmt"

	"crowlands-be/internal/repository/contract"
	"crowlands-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GrimoireRepository() contract.GrimoireRepository {
	return implementation.NewGrimoireRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FavoriteRepository() contract.FavoriteRepository {
	return implementation.NewFavoriteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DeityRepository() contract.DeityRepository {
	return implementation.NewDeityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) FigureRepository() contract.FigureRepository {
	return implementation.NewFigureRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SiteRepository() contract.SiteRepository {
	return implementation.NewSiteRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RitualRepository() contract.RitualRepository {
	return implementation.NewRitualRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TimelineRepository() contract.TimelineRepository {
	return implementation.NewTimelineRepository(u.getDB())
}

func (u *UnitOfWorkImpl) GenerationEventRepository() contract.GenerationEventRepository {
	return implementation.NewGenerationEventRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubscriptionOrderRepository() contract.SubscriptionOrderRepository {
	return implementation.NewSubscriptionOrderRepository(u.getDB())
}
