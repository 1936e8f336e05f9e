package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TemplateRepository.Delete is the single delete primitive both the scoped
// and the unscoped template deletion endpoints converge on.
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.UserTemplate) error
	Update(ctx context.Context, template *entity.UserTemplate) error
	Delete(ctx context.Context, id uint) error
	DeleteByCollectionUuid(ctx context.Context, collectionUuid uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserTemplate, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserTemplate, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
