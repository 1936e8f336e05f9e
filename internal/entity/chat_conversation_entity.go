package entity

import (
	"time"
)

type ChatConversation struct {
	Id            uint
	UserId        uint
	Title         string
	LastMessageAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
	IsDeleted     bool
}
