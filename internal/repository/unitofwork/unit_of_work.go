package unitofwork

import (
	"context"

	"chat-workspace-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository

	ChatConversationRepository() contract.ChatConversationRepository
	ChatMessageRepository() contract.ChatMessageRepository
	ChatFileRepository() contract.ChatFileRepository
	ChatShareRepository() contract.ChatShareRepository

	TemplateCollectionRepository() contract.TemplateCollectionRepository
	TemplateRepository() contract.TemplateRepository

	InstallationRepository() contract.InstallationRepository
	ProjectContextRepository() contract.ProjectContextRepository
}
