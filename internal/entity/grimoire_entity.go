package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SavedSpell is a grimoire entry. The spell payload is stored opaquely so a
// save/list round trip reproduces exactly what the client sent.
type SavedSpell struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	SpellData      json.RawMessage
	ArchetypeId    string
	ArchetypeName  string
	ArchetypeTitle string
	ImageData      *string
	Title          string
	CreatedAt      time.Time
}

type Favorite struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	ItemType  string
	ItemId    string
	CreatedAt time.Time
}

// GenerationEvent is an audit row written asynchronously after each
// generation call by the consumer service.
type GenerationEvent struct {
	Id          uuid.UUID
	UserId      *uuid.UUID
	SessionId   string
	ArchetypeId string
	ParseError  bool
	ImageMade   bool
	LatencyMs   int64
	CreatedAt   time.Time
}

type SubscriptionOrderStatus string

const (
	OrderStatusPending SubscriptionOrderStatus = "pending"
	OrderStatusPaid    SubscriptionOrderStatus = "paid"
	OrderStatusFailed  SubscriptionOrderStatus = "failed"
)

// SubscriptionOrder tracks one checkout attempt; the order id is the
// midtrans transaction reference the webhook reports back on.
type SubscriptionOrder struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Amount    int64
	Status    SubscriptionOrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
