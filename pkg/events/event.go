package events

import "time"

// Event is the contract for everything that goes onto the event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SPELL_GENERATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a plain implementation used by publishers that don't need a
// dedicated event type.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSpellGenerated builds the event emitted after every completed spell
// generation, whether or not the model response parsed cleanly.
func NewSpellGenerated(userId, archetypeId string, parseError bool) BaseEvent {
	return BaseEvent{
		Type: "SPELL_GENERATED",
		Data: map[string]interface{}{
			"user_id":      userId,
			"archetype_id": archetypeId,
			"parse_error":  parseError,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserRegistered is emitted once after a successful registration.
func NewUserRegistered(userId, email string) BaseEvent {
	return BaseEvent{
		Type: "USER_REGISTERED",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserLogin is emitted after every successful login.
func NewUserLogin(userId, email string) BaseEvent {
	return BaseEvent{
		Type: "USER_LOGIN",
		Data: map[string]interface{}{
			"user_id": userId,
			"email":   email,
		},
		OccurredAt: time.Now(),
	}
}

// NewSubscriptionUpgraded is emitted when a user moves to the paid tier,
// either through checkout settlement or the admin backdoor.
func NewSubscriptionUpgraded(userId, source string) BaseEvent {
	return BaseEvent{
		Type: "SUBSCRIPTION_UPGRADED",
		Data: map[string]interface{}{
			"user_id": userId,
			"source":  source,
		},
		OccurredAt: time.Now(),
	}
}
