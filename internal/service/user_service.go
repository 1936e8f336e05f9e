package service

import (
	"context"
	"time"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/pkg/logger"
	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/pkg/session"
	"chat-workspace-be/internal/repository/specification"
	"chat-workspace-be/internal/repository/unitofwork"
	"chat-workspace-be/pkg/events"
	"chat-workspace-be/pkg/kvstore"
	pkgNats "chat-workspace-be/pkg/nats"
)

// Topics for the per-user selection memory in the ephemeral key-value mount.
const (
	selectionTopicChat  = "last-chat"
	selectionTopicModel = "last-model"
)

type IUserService interface {
	GetFiles(ctx context.Context, userId uint) ([]*dto.UserFileResponse, error)
	GetInstallations(ctx context.Context, userId uint) ([]*dto.InstallationResponse, error)
	GetProjectContext(ctx context.Context, userId, projectId uint) (*dto.ProjectContextResponse, error)
	SaveProjectContext(ctx context.Context, userId, projectId uint, req *dto.SaveProjectContextRequest) (*dto.ProjectContextResponse, error)
	GetSelection(ctx context.Context, userId uint) (*dto.SelectionResponse, error)
	UpdateSelection(ctx context.Context, userId uint, req *dto.UpdateSelectionRequest) (*dto.SelectionResponse, error)
	DeleteAccount(ctx context.Context, userId uint, sessionId string) (*dto.DeleteResult, error)
}

type userService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionStore   *session.Store
	selectionStore *kvstore.Store
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	sessionStore *session.Store,
	selectionStore *kvstore.Store,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) IUserService {
	return &userService{
		uowFactory:     uowFactory,
		sessionStore:   sessionStore,
		selectionStore: selectionStore,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

// GetFiles lists every attachment across the user's live conversations.
// An empty result is an empty list, never a 404.
func (c *userService) GetFiles(ctx context.Context, userId uint) ([]*dto.UserFileResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	files, err := uow.ChatFileRepository().FindAllByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserFileResponse, 0, len(files))
	for _, file := range files {
		res = append(res, &dto.UserFileResponse{
			Id:        file.Id,
			ChatId:    file.ChatId,
			Name:      file.Name,
			CreatedAt: file.CreatedAt,
		})
	}
	return res, nil
}

func (c *userService) GetInstallations(ctx context.Context, userId uint) ([]*dto.InstallationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	installations, err := uow.InstallationRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.InstallationResponse, 0, len(installations))
	for _, installation := range installations {
		res = append(res, &dto.InstallationResponse{
			Id:        installation.Id,
			CreatedAt: installation.CreatedAt,
		})
	}
	return res, nil
}

// GetProjectContext is a point read: no context stored for the pair is a 404,
// not an empty object.
func (c *userService) GetProjectContext(ctx context.Context, userId, projectId uint) (*dto.ProjectContextResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	projectContext, err := uow.ProjectContextRepository().Find(ctx, userId, projectId)
	if err != nil {
		return nil, err
	}
	if projectContext == nil {
		return nil, serverutils.NotFound("Project context not found")
	}

	return &dto.ProjectContextResponse{Context: projectContext.Context}, nil
}

// SaveProjectContext upserts the context blob for the (user, project) pair.
func (c *userService) SaveProjectContext(ctx context.Context, userId, projectId uint, req *dto.SaveProjectContextRequest) (*dto.ProjectContextResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	projectContext := entity.ProjectContext{
		UserId:    userId,
		ProjectId: projectId,
		Context:   req.Context,
		CreatedAt: time.Now(),
	}
	if err := uow.ProjectContextRepository().Save(ctx, &projectContext); err != nil {
		return nil, err
	}

	return &dto.ProjectContextResponse{Context: projectContext.Context}, nil
}

func (c *userService) GetSelection(ctx context.Context, userId uint) (*dto.SelectionResponse, error) {
	lastChat, err := c.selectionStore.Get(ctx, selectionTopicChat, userId)
	if err != nil {
		return nil, err
	}
	lastModel, err := c.selectionStore.Get(ctx, selectionTopicModel, userId)
	if err != nil {
		return nil, err
	}

	return &dto.SelectionResponse{
		LastChatId: lastChat,
		LastModel:  lastModel,
	}, nil
}

func (c *userService) UpdateSelection(ctx context.Context, userId uint, req *dto.UpdateSelectionRequest) (*dto.SelectionResponse, error) {
	if req.LastChatId != "" {
		if err := c.selectionStore.Set(ctx, selectionTopicChat, userId, req.LastChatId); err != nil {
			return nil, err
		}
	}
	if req.LastModel != "" {
		if err := c.selectionStore.Set(ctx, selectionTopicModel, userId, req.LastModel); err != nil {
			return nil, err
		}
	}
	return c.GetSelection(ctx, userId)
}

// DeleteAccount removes the user row and hard-deletes the user's
// conversations in one transaction. The session is cleared only after the
// commit: a failed delete must leave the caller logged in.
func (c *userService) DeleteAccount(ctx context.Context, userId uint, sessionId string) (*dto.DeleteResult, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatConversationRepository().DeleteAllByUserIdUnscoped(ctx, userId); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().Delete(ctx, userId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if sessionId != "" {
		if _, err := c.sessionStore.Clear(ctx, sessionId); err != nil {
			c.sysLogger.Warn("UserService", "Failed to clear session after account delete", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeUserDeleted,
			Data: map[string]interface{}{
				"user_id": userId,
				"email":   user.PrimaryEmail,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.sysLogger.Warn("UserService", "Failed to publish event", map[string]interface{}{
				"event": events.TypeUserDeleted,
				"error": err.Error(),
			})
		}
	}

	return &dto.DeleteResult{Success: true}, nil
}
