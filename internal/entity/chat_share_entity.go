package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatConversationShare is the 0..1 public share token of a conversation.
// Absence of a row means "not shared".
type ChatConversationShare struct {
	ChatId    uint
	Uuid      uuid.UUID
	CreatedAt time.Time
}
