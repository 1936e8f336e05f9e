package model

import (
	"time"

	"gorm.io/datatypes"
)

type ChatConversationFile struct {
	Id        uint           `gorm:"primaryKey;autoIncrement"`
	ChatId    uint           `gorm:"not null;index"`
	Name      string         `gorm:"type:varchar(512);not null"`
	Content   string         `gorm:"type:text"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (ChatConversationFile) TableName() string {
	return "chat_conversation_files"
}
