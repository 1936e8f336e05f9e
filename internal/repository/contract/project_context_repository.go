package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
)

type ProjectContextRepository interface {
	// Find returns nil (no error) when the (user, project) pair has no context.
	Find(ctx context.Context, userId, projectId uint) (*entity.ProjectContext, error)
	Save(ctx context.Context, projectContext *entity.ProjectContext) error
}
