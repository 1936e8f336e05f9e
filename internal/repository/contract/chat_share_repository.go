package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/repository/specification"
)

type ChatShareRepository interface {
	Create(ctx context.Context, share *entity.ChatConversationShare) error
	DeleteByChatId(ctx context.Context, chatId uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatConversationShare, error)
}
