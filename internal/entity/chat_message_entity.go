package entity

import (
	"time"
)

// ChatMessage is append-only: rows are created once and never mutated.
type ChatMessage struct {
	Id        uint
	ChatId    uint
	Role      string
	Content   string
	CreatedAt time.Time
}

const (
	MessageRoleUser      = "user"
	MessageRoleAssistant = "assistant"
	MessageRoleSystem    = "system"
)
