package service

import (
	"context"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/repository/specification"
	"chat-workspace-be/internal/repository/unitofwork"
	"chat-workspace-be/pkg/github"
)

type IImportService interface {
	ListCandidates(ctx context.Context, userId uint, installationId uint) ([]*dto.ImportCandidate, error)
}

type importService struct {
	uowFactory   unitofwork.RepositoryFactory
	githubClient *github.Client
}

func NewImportService(
	uowFactory unitofwork.RepositoryFactory,
	githubClient *github.Client,
) IImportService {
	return &importService{
		uowFactory:   uowFactory,
		githubClient: githubClient,
	}
}

// ListCandidates projects the repositories an owned installation grants
// access to. Nothing is persisted; each call hits the code host.
func (c *importService) ListCandidates(ctx context.Context, userId uint, installationId uint) ([]*dto.ImportCandidate, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	installation, err := uow.InstallationRepository().FindOne(ctx,
		specification.ByID{ID: installationId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if installation == nil {
		return nil, serverutils.NotFound("Installation not found")
	}

	// The client is nil when app credentials are not configured.
	if c.githubClient == nil {
		return nil, serverutils.Internal("GitHub App not configured", nil)
	}

	repositories, err := c.githubClient.ListInstallationRepositories(ctx, installationId)
	if err != nil {
		return nil, serverutils.Internal("Failed to list repositories", err)
	}

	res := make([]*dto.ImportCandidate, 0, len(repositories))
	for _, repository := range repositories {
		license := ""
		if repository.License != nil {
			license = repository.License.SpdxId
		}
		res = append(res, &dto.ImportCandidate{
			GithubRepositoryId: repository.Id,
			Name:               repository.Name,
			Description:        repository.Description,
			Size:               repository.Size,
			Language:           repository.Language,
			License:            license,
			Url:                repository.HtmlUrl,
			WebsiteUrl:         repository.Homepage,
			DefaultBranch:      repository.DefaultBranch,
			IsPrivate:          repository.Private,
			IsFork:             repository.Fork,
			IsTemplate:         repository.IsTemplate,
			IsArchived:         repository.Archived,
			InstallationId:     installationId,
		})
	}
	return res, nil
}
