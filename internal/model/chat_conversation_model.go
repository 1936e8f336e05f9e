package model

import (
	"time"

	"gorm.io/gorm"
)

type ChatConversation struct {
	Id            uint           `gorm:"primaryKey;autoIncrement"`
	UserId        uint           `gorm:"not null;index"` // User ownership for data isolation
	Title         string         `gorm:"type:text;not null"`
	LastMessageAt *time.Time     `gorm:"index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (ChatConversation) TableName() string {
	return "chat_conversations"
}
