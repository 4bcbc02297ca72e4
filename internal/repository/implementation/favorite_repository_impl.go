package implementation

import (
	"context"

	"crowlands-be/internal/entity"
	"crowlands-be/internal/mapper"
	"crowlands-be/internal/model"
	"crowlands-be/internal/repository/contract"
	"crowlands-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GrimoireMapper
}

func NewFavoriteRepository(db *gorm.DB) contract.FavoriteRepository {
	return &FavoriteRepositoryImpl{
		db:     db,
		mapper: mapper.NewGrimoireMapper(),
	}
}

func (r *FavoriteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FavoriteRepositoryImpl) Add(ctx context.Context, favorite *entity.Favorite) error {
	modelFavorite := r.mapper.FavoriteToModel(favorite)
	// ON CONFLICT DO NOTHING keeps repeated adds idempotent
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_type"}, {Name: "item_id"}},
			DoNothing: true,
		}).
		Create(modelFavorite).Error; err != nil {
		return err
	}
	*favorite = *r.mapper.FavoriteToEntity(modelFavorite)
	return nil
}

func (r *FavoriteRepositoryImpl) Remove(ctx context.Context, userId uuid.UUID, itemType, itemId string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userId, itemType, itemId).
		Delete(&model.Favorite{}).Error
}

func (r *FavoriteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Favorite, error) {
	var modelFavorites []*model.Favorite
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelFavorites).Error; err != nil {
		return nil, err
	}

	return r.mapper.FavoritesToEntities(modelFavorites), nil
}

func (r *FavoriteRepositoryImpl) Exists(ctx context.Context, userId uuid.UUID, itemType, itemId string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userId, itemType, itemId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
