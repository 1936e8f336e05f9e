package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateChatRequest struct {
	Title string `json:"title" validate:"required"`
}

type CreateChatResponse struct {
	Id uint `json:"id"`
}

type ChatConversationResponse struct {
	Id            uint       `json:"id"`
	Title         string     `json:"title"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type ChatMessageResponse struct {
	Id        uint      `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatMessagesResponse struct {
	ChatMessages []*ChatMessageResponse `json:"chatMessages"`
}

type ChatFileResponse struct {
	Id        uint           `json:"id"`
	Name      string         `json:"name"`
	Content   string         `json:"content,omitempty"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type ChatFilesResponse struct {
	ChatFiles []*ChatFileResponse `json:"chatFiles"`
}

type ChatShareResponse struct {
	ChatId    uint      `json:"chat_id"`
	Uuid      uuid.UUID `json:"uuid"`
	CreatedAt time.Time `json:"created_at"`
}

// SharedChatResponse is the public view behind a share token.
type SharedChatResponse struct {
	Title        string                 `json:"title"`
	ChatMessages []*ChatMessageResponse `json:"chatMessages"`
}

type DeleteResult struct {
	Success bool `json:"success"`
}
