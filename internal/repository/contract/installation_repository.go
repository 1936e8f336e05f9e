package contract

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/repository/specification"
)

type InstallationRepository interface {
	Create(ctx context.Context, installation *entity.GithubAppInstallation) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GithubAppInstallation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GithubAppInstallation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
