package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/repository/specification"
)

type ChatFileRepository interface {
	Create(ctx context.Context, file *entity.ChatConversationFile) error
	DeleteByChatId(ctx context.Context, chatId uint) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatConversationFile, error)
	// FindAllByUserId joins through chat_conversations so a user's files can
	// be listed without loading the conversations first.
	FindAllByUserId(ctx context.Context, userId uint) ([]*entity.ChatConversationFile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
