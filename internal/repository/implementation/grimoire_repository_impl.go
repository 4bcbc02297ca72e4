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

type GrimoireRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GrimoireMapper
}

func NewGrimoireRepository(db *gorm.DB) contract.GrimoireRepository {
	return &GrimoireRepositoryImpl{
		db:     db,
		mapper: mapper.NewGrimoireMapper(),
	}
}

func (r *GrimoireRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GrimoireRepositoryImpl) Create(ctx context.Context, spell *entity.SavedSpell) error {
	modelSpell := r.mapper.ToModel(spell)
	if err := r.db.WithContext(ctx).Create(modelSpell).Error; err != nil {
		return err
	}
	*spell = *r.mapper.ToEntity(modelSpell)
	return nil
}

func (r *GrimoireRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SavedSpell, error) {
	var modelSpell model.SavedSpell
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelSpell).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelSpell), nil
}

func (r *GrimoireRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SavedSpell, error) {
	var modelSpells []*model.SavedSpell
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelSpells).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelSpells), nil
}

func (r *GrimoireRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SavedSpell{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GrimoireRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SavedSpell{}).Error
}
