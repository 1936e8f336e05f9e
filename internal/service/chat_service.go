package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/pkg/logger"
	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/repository/specification"
	"chat-workspace-be/internal/repository/unitofwork"
	"chat-workspace-be/pkg/events"
	pkgNats "chat-workspace-be/pkg/nats"
)

// Columns a conversation listing may sort on. Anything else in the order
// string is rejected before it can reach SQL.
var chatSortableColumns = []string{"id", "title", "created_at", "last_message_at"}

type IChatService interface {
	Create(ctx context.Context, userId uint, req *dto.CreateChatRequest) (*dto.CreateChatResponse, error)
	GetAll(ctx context.Context, userId uint, order string) ([]*dto.ChatConversationResponse, error)
	GetMessages(ctx context.Context, userId uint, chatId uint) (*dto.ChatMessagesResponse, error)
	GetFiles(ctx context.Context, userId uint, chatId uint) (*dto.ChatFilesResponse, error)
	GetShare(ctx context.Context, userId uint, chatId uint) (*dto.ChatShareResponse, error)
	CreateShare(ctx context.Context, userId uint, chatId uint) (*dto.ChatShareResponse, error)
	GetSharedByToken(ctx context.Context, token uuid.UUID) (*dto.SharedChatResponse, error)
	Delete(ctx context.Context, userId uint, chatId uint) (*dto.DeleteResult, error)
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

// resolveOwned is the single ownership gate: a conversation that does not
// exist and one owned by somebody else produce the same 404.
func (c *chatService) resolveOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, chatId uint) (*entity.ChatConversation, error) {
	chat, err := uow.ChatConversationRepository().FindOne(ctx,
		specification.ByID{ID: chatId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		return nil, serverutils.NotFound("Chat not found")
	}
	return chat, nil
}

func (c *chatService) Create(ctx context.Context, userId uint, req *dto.CreateChatRequest) (*dto.CreateChatResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	chat := entity.ChatConversation{
		UserId:    userId,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatConversationRepository().Create(ctx, &chat); err != nil {
		return nil, err
	}

	return &dto.CreateChatResponse{Id: chat.Id}, nil
}

func (c *chatService) GetAll(ctx context.Context, userId uint, order string) ([]*dto.ChatConversationResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	clauses, err := specification.ParseOrderString(order, chatSortableColumns...)
	if err != nil {
		return nil, serverutils.BadRequest(err.Error())
	}

	specs := []specification.Specification{specification.UserOwnedBy{UserID: userId}}
	for _, clause := range clauses {
		specs = append(specs, clause.Spec())
	}
	if len(clauses) == 0 {
		specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	}

	chats, err := uow.ChatConversationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.ChatConversationResponse, 0, len(chats))
	for _, chat := range chats {
		res = append(res, &dto.ChatConversationResponse{
			Id:            chat.Id,
			Title:         chat.Title,
			LastMessageAt: chat.LastMessageAt,
			CreatedAt:     chat.CreatedAt,
			UpdatedAt:     chat.UpdatedAt,
		})
	}
	return res, nil
}

func (c *chatService) GetMessages(ctx context.Context, userId uint, chatId uint) (*dto.ChatMessagesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.resolveOwned(ctx, uow, userId, chatId); err != nil {
		return nil, err
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := dto.ChatMessagesResponse{ChatMessages: make([]*dto.ChatMessageResponse, 0, len(messages))}
	for _, message := range messages {
		res.ChatMessages = append(res.ChatMessages, &dto.ChatMessageResponse{
			Id:        message.Id,
			Role:      message.Role,
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		})
	}
	return &res, nil
}

func (c *chatService) GetFiles(ctx context.Context, userId uint, chatId uint) (*dto.ChatFilesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.resolveOwned(ctx, uow, userId, chatId); err != nil {
		return nil, err
	}

	files, err := uow.ChatFileRepository().FindAll(ctx,
		specification.ByChatID{ChatID: chatId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := dto.ChatFilesResponse{ChatFiles: make([]*dto.ChatFileResponse, 0, len(files))}
	for _, file := range files {
		res.ChatFiles = append(res.ChatFiles, &dto.ChatFileResponse{
			Id:        file.Id,
			Name:      file.Name,
			Content:   file.Content,
			Metadata:  file.Metadata,
			CreatedAt: file.CreatedAt,
		})
	}
	return &res, nil
}

func (c *chatService) GetShare(ctx context.Context, userId uint, chatId uint) (*dto.ChatShareResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.resolveOwned(ctx, uow, userId, chatId); err != nil {
		return nil, err
	}

	share, err := uow.ChatShareRepository().FindOne(ctx, specification.ByChatID{ChatID: chatId})
	if err != nil {
		return nil, err
	}
	if share == nil {
		// Not shared is a valid state, not an error.
		return nil, nil
	}

	return &dto.ChatShareResponse{
		ChatId:    share.ChatId,
		Uuid:      share.Uuid,
		CreatedAt: share.CreatedAt,
	}, nil
}

// CreateShare is idempotent: a conversation carries at most one share token,
// so a second call returns the existing one.
func (c *chatService) CreateShare(ctx context.Context, userId uint, chatId uint) (*dto.ChatShareResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.resolveOwned(ctx, uow, userId, chatId); err != nil {
		return nil, err
	}

	existing, err := uow.ChatShareRepository().FindOne(ctx, specification.ByChatID{ChatID: chatId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.ChatShareResponse{
			ChatId:    existing.ChatId,
			Uuid:      existing.Uuid,
			CreatedAt: existing.CreatedAt,
		}, nil
	}

	share := entity.ChatConversationShare{
		ChatId:    chatId,
		Uuid:      uuid.New(),
		CreatedAt: time.Now(),
	}
	if err := uow.ChatShareRepository().Create(ctx, &share); err != nil {
		return nil, err
	}

	return &dto.ChatShareResponse{
		ChatId:    share.ChatId,
		Uuid:      share.Uuid,
		CreatedAt: share.CreatedAt,
	}, nil
}

// GetSharedByToken is the public read path: the token alone grants access to
// the conversation title and messages, never to ownership data.
func (c *chatService) GetSharedByToken(ctx context.Context, token uuid.UUID) (*dto.SharedChatResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	share, err := uow.ChatShareRepository().FindOne(ctx, specification.ByUUID{UUID: token})
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, serverutils.NotFound("Shared chat not found")
	}

	chat, err := uow.ChatConversationRepository().FindOne(ctx, specification.ByID{ID: share.ChatId})
	if err != nil {
		return nil, err
	}
	if chat == nil {
		// Token survived its conversation; treat as revoked.
		return nil, serverutils.NotFound("Shared chat not found")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatID{ChatID: share.ChatId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := dto.SharedChatResponse{
		Title:        chat.Title,
		ChatMessages: make([]*dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, message := range messages {
		res.ChatMessages = append(res.ChatMessages, &dto.ChatMessageResponse{
			Id:        message.Id,
			Role:      message.Role,
			Content:   message.Content,
			CreatedAt: message.CreatedAt,
		})
	}
	return &res, nil
}

// Delete removes the conversation and, in the same transaction, its
// messages, files and share token. Children of children are left to their
// own cascades.
func (c *chatService) Delete(ctx context.Context, userId uint, chatId uint) (*dto.DeleteResult, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	chat, err := c.resolveOwned(ctx, uow, userId, chatId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatId(ctx, chatId); err != nil {
		return nil, err
	}
	if err := uow.ChatFileRepository().DeleteByChatId(ctx, chatId); err != nil {
		return nil, err
	}
	if err := uow.ChatShareRepository().DeleteByChatId(ctx, chatId); err != nil {
		return nil, err
	}
	if err := uow.ChatConversationRepository().Delete(ctx, chatId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Notification only; the delete already committed.
	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeChatDeleted,
			Data: map[string]interface{}{
				"chat_id": chat.Id,
				"user_id": userId,
				"title":   chat.Title,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.sysLogger.Warn("ChatService", "Failed to publish event", map[string]interface{}{
				"event": events.TypeChatDeleted,
				"error": err.Error(),
			})
		}
	}

	return &dto.DeleteResult{Success: true}, nil
}
