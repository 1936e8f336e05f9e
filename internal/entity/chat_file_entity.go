package entity

import (
	"time"

	"gorm.io/datatypes"
)

type ChatConversationFile struct {
	Id        uint
	ChatId    uint
	Name      string
	Content   string
	Metadata  datatypes.JSON
	CreatedAt time.Time
}
