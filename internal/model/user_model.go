package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id                   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email                string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name                 string    `gorm:"type:varchar(255);not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	SubscriptionTier     string    `gorm:"type:varchar(50);not null;default:'free'"`
	SubscriptionStatus   string    `gorm:"type:varchar(50);not null;default:'inactive'"`
	SubscriptionStart    *time.Time
	SubscriptionEnd      *time.Time
	SpellGenerationCount int       `gorm:"default:0"`
	SpellGenerationReset time.Time `gorm:"autoCreateTime"`
	LifetimeGenerated    int       `gorm:"default:0"`
	LifetimeSaved        int       `gorm:"default:0"`
	CreatedAt            time.Time `gorm:"autoCreateTime"`
	LastLoginAt          *time.Time
}

func (User) TableName() string {
	return "users"
}
