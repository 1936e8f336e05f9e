package dto

import (
	"time"

	"gorm.io/datatypes"
)

type UserFileResponse struct {
	Id        uint      `json:"id"`
	ChatId    uint      `json:"chat_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type InstallationResponse struct {
	Id        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type ProjectContextResponse struct {
	Context datatypes.JSON `json:"context"`
}

type SaveProjectContextRequest struct {
	Context datatypes.JSON `json:"context" validate:"required"`
}

// SelectionResponse mirrors the namespaced "last known selection" keys kept
// in the ephemeral key-value mount, scoped per user.
type SelectionResponse struct {
	LastChatId string `json:"last_chat_id,omitempty"`
	LastModel  string `json:"last_model,omitempty"`
}

type UpdateSelectionRequest struct {
	LastChatId string `json:"last_chat_id"`
	LastModel  string `json:"last_model"`
}
