package model

import (
	"time"
)

// No UpdatedAt / DeletedAt: messages are append-only.
type ChatMessage struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	ChatId    uint      `gorm:"not null;index"`
	Role      string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
