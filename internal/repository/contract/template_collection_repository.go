package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TemplateCollectionRepository interface {
	Create(ctx context.Context, collection *entity.UserTemplateCollection) error
	Update(ctx context.Context, collection *entity.UserTemplateCollection) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserTemplateCollection, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserTemplateCollection, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
