package specification

import "gorm.io/gorm"

// ByCategory filters rituals and timeline events.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// ByDeityAssociation filters rituals linked to one deity.
type ByDeityAssociation struct {
	DeityId string
}

func (s ByDeityAssociation) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("deity_association = ?", s.DeityId)
}

// ByYearRange bounds timeline queries; zero values drop the bound.
type ByYearRange struct {
	From int
	To   int
}

func (s ByYearRange) Apply(db *gorm.DB) *gorm.DB {
	if s.From != 0 {
		db = db.Where("year >= ?", s.From)
	}
	if s.To != 0 {
		db = db.Where("year <= ?", s.To)
	}
	return db
}
