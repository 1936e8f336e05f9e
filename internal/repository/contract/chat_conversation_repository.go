package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/repository/specification"
)

type ChatConversationRepository interface {
	Create(ctx context.Context, conversation *entity.ChatConversation) error
	Update(ctx context.Context, conversation *entity.ChatConversation) error
	Delete(ctx context.Context, id uint) error
	DeleteAllByUserIdUnscoped(ctx context.Context, userId uint) error // Hard delete all
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatConversation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatConversation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
