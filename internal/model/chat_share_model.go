package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatConversationShare struct {
	ChatId    uint      `gorm:"primaryKey"`
	Uuid      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatConversationShare) TableName() string {
	return "chat_conversation_shares"
}
