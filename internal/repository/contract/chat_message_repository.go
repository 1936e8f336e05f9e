package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/repository/specification"
)

// ChatMessageRepository is append-only on the read/write side; the only
// delete is the cascade that runs when the owning conversation goes away.
type ChatMessageRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	DeleteByChatId(ctx context.Context, chatId uint) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
