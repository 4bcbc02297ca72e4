package entity

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionTier string
type SubscriptionStatus string

const (
	TierFree SubscriptionTier = "free"
	TierPaid SubscriptionTier = "paid"

	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusInactive SubscriptionStatus = "inactive"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

type User struct {
	Id                   uuid.UUID
	Email                string
	Name                 string
	PasswordHash         string
	SubscriptionTier     SubscriptionTier
	SubscriptionStatus   SubscriptionStatus
	SubscriptionStart    *time.Time
	SubscriptionEnd      *time.Time
	SpellGenerationCount int
	SpellGenerationReset time.Time
	LifetimeGenerated    int
	LifetimeSaved        int
	CreatedAt            time.Time
	LastLoginAt          *time.Time
}

// IsPaid reports whether the user currently holds the paid tier.
func (u *User) IsPaid() bool {
	return u.SubscriptionTier == TierPaid
}
