package mapper

import (
	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/model"
)

// WorkspaceMapper covers the thin read-side aggregates (installations,
// project contexts) that have no write path through the API.
type WorkspaceMapper struct{}

func NewWorkspaceMapper() *WorkspaceMapper {
	return &WorkspaceMapper{}
}

func (m *WorkspaceMapper) InstallationToEntity(i *model.GithubAppInstallation) *entity.GithubAppInstallation {
	if i == nil {
		return nil
	}
	return &entity.GithubAppInstallation{
		Id:        i.Id,
		UserId:    i.UserId,
		CreatedAt: i.CreatedAt,
	}
}

func (m *WorkspaceMapper) InstallationToModel(i *entity.GithubAppInstallation) *model.GithubAppInstallation {
	if i == nil {
		return nil
	}
	return &model.GithubAppInstallation{
		Id:        i.Id,
		UserId:    i.UserId,
		CreatedAt: i.CreatedAt,
	}
}

func (m *WorkspaceMapper) ProjectContextToEntity(p *model.ProjectContext) *entity.ProjectContext {
	if p == nil {
		return nil
	}
	return &entity.ProjectContext{
		UserId:    p.UserId,
		ProjectId: p.ProjectId,
		Context:   p.Context,
		CreatedAt: p.CreatedAt,
	}
}

func (m *WorkspaceMapper) ProjectContextToModel(p *entity.ProjectContext) *model.ProjectContext {
	if p == nil {
		return nil
	}
	return &model.ProjectContext{
		UserId:    p.UserId,
		ProjectId: p.ProjectId,
		Context:   p.Context,
		CreatedAt: p.CreatedAt,
	}
}
