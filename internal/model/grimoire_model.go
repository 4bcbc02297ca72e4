package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SavedSpell struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	SpellData      datatypes.JSON `gorm:"type:jsonb;not null"`
	ArchetypeId    string         `gorm:"type:varchar(100)"`
	ArchetypeName  string         `gorm:"type:varchar(255)"`
	ArchetypeTitle string         `gorm:"type:varchar(255)"`
	ImageData      *string        `gorm:"type:text"`
	Title          string         `gorm:"type:varchar(255)"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (SavedSpell) TableName() string {
	return "saved_spells"
}

type Favorite struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_item"`
	ItemType  string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_favorites_user_item"`
	ItemId    string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_favorites_user_item"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}
