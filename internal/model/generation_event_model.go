package model

import (
	"time"

	"github.com/google/uuid"
)

type GenerationEvent struct {
	Id          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      *uuid.UUID `gorm:"type:uuid;index"`
	SessionId   string     `gorm:"type:varchar(100)"`
	ArchetypeId string     `gorm:"type:varchar(100)"`
	ParseError  bool       `gorm:"default:false"`
	ImageMade   bool       `gorm:"default:false"`
	LatencyMs   int64      `gorm:"default:0"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
}

func (GenerationEvent) TableName() string {
	return "generation_events"
}
