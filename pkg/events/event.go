package events

import "time"

// Event is the contract every domain event satisfies.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_DELETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the plain implementation the services emit.
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

// Event codes emitted on the cascading deletes.
const (
	TypeUserDeleted       = "USER_DELETED"
	TypeChatDeleted       = "CHAT_DELETED"
	TypeCollectionDeleted = "COLLECTION_DELETED"
)
