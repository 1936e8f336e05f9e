package unitofwork

import (
	"context"
	"fmt"

	"chat-workspace-be/internal/repository/contract"
	"chat-workspace-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // The active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatConversationRepository() contract.ChatConversationRepository {
	return implementation.NewChatConversationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatMessageRepository() contract.ChatMessageRepository {
	return implementation.NewChatMessageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatFileRepository() contract.ChatFileRepository {
	return implementation.NewChatFileRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ChatShareRepository() contract.ChatShareRepository {
	return implementation.NewChatShareRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TemplateCollectionRepository() contract.TemplateCollectionRepository {
	return implementation.NewTemplateCollectionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) TemplateRepository() contract.TemplateRepository {
	return implementation.NewTemplateRepository(u.getDB())
}

func (u *UnitOfWorkImpl) InstallationRepository() contract.InstallationRepository {
	return implementation.NewInstallationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProjectContextRepository() contract.ProjectContextRepository {
	return implementation.NewProjectContextRepository(u.getDB())
}
