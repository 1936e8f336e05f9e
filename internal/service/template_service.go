package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"chat-workspace-be/internal/dto"
	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/pkg/logger"
	"chat-workspace-be/internal/pkg/serverutils"
	"chat-workspace-be/internal/repository/memory"
	"chat-workspace-be/internal/repository/specification"
	"chat-workspace-be/internal/repository/unitofwork"
	"chat-workspace-be/pkg/events"
	pkgNats "chat-workspace-be/pkg/nats"
)

type ITemplateService interface {
	ListShared(ctx context.Context) (*dto.CollectionsListResponse, error)
	ListForUser(ctx context.Context, userId uint) ([]*dto.CollectionResponse, error)
	CreateCollection(ctx context.Context, userId uint, req *dto.CreateCollectionRequest) (*dto.CreateCollectionResponse, error)
	DeleteCollection(ctx context.Context, userId uint, collectionUuid uuid.UUID) (*dto.DeleteResult, error)
	CreateTemplate(ctx context.Context, userId uint, collectionUuid uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error)
	GetTemplate(ctx context.Context, userId uint, collectionUuid uuid.UUID, templateId uint) (*dto.ShowTemplateResponse, error)
	DeleteTemplate(ctx context.Context, userId uint, collectionUuid uuid.UUID, templateId uint) (*dto.DeleteResult, error)
}

type templateService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	collectionsCache *memory.CollectionsCache
	eventPublisher   *pkgNats.Publisher
	sysLogger        logger.ILogger
}

func NewTemplateService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	collectionsCache *memory.CollectionsCache,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) ITemplateService {
	return &templateService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		collectionsCache: collectionsCache,
		eventPublisher:   eventPublisher,
		sysLogger:        sysLogger,
	}
}

// resolveOwnedCollection mirrors the conversation ownership gate: absent and
// foreign-owned collections are the same 404.
func (c *templateService) resolveOwnedCollection(ctx context.Context, uow unitofwork.UnitOfWork, userId uint, collectionUuid uuid.UUID) (*entity.UserTemplateCollection, error) {
	collection, err := uow.TemplateCollectionRepository().FindOne(ctx,
		specification.ByUUID{UUID: collectionUuid},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, serverutils.NotFound("Collection not found")
	}
	return collection, nil
}

// invalidateListing tells the cached shared listing to drop its snapshot.
// Best effort over the in-process bus; a lost message only means one stale
// TTL window.
func (c *templateService) invalidateListing(ctx context.Context, reason string) {
	payload, err := json.Marshal(dto.PublishCacheInvalidationMessage{Reason: reason})
	if err != nil {
		return
	}
	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.sysLogger.Warn("TemplateService", "Failed to publish cache invalidation", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
}

func (c *templateService) ListShared(ctx context.Context) (*dto.CollectionsListResponse, error) {
	if cached, found := c.collectionsCache.Get(); found {
		return cached, nil
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)

	collections, err := uow.TemplateCollectionRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	total, err := uow.TemplateCollectionRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	res := dto.CollectionsListResponse{
		Collections: make([]*dto.CollectionResponse, 0, len(collections)),
		Total:       total,
	}
	for _, collection := range collections {
		item, err := c.buildCollection(ctx, uow, collection)
		if err != nil {
			return nil, err
		}
		res.Collections = append(res.Collections, item)
	}

	c.collectionsCache.Save(&res)
	return &res, nil
}

func (c *templateService) ListForUser(ctx context.Context, userId uint) ([]*dto.CollectionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	collections, err := uow.TemplateCollectionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		item, err := c.buildCollection(ctx, uow, collection)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

func (c *templateService) buildCollection(ctx context.Context, uow unitofwork.UnitOfWork, collection *entity.UserTemplateCollection) (*dto.CollectionResponse, error) {
	templates, err := uow.TemplateRepository().FindAll(ctx,
		specification.ByCollectionUUID{CollectionUUID: collection.Uuid},
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	res := dto.CollectionResponse{
		Uuid:      collection.Uuid,
		Name:      collection.Name,
		CreatedAt: collection.CreatedAt,
		Templates: make([]*dto.TemplateResponse, 0, len(templates)),
	}
	for _, template := range templates {
		res.Templates = append(res.Templates, mapTemplate(template))
	}
	return &res, nil
}

func mapTemplate(template *entity.UserTemplate) *dto.TemplateResponse {
	return &dto.TemplateResponse{
		Id:             template.Id,
		CollectionUuid: template.CollectionUuid,
		Name:           template.Name,
		Content:        template.Content,
		CreatedAt:      template.CreatedAt,
		UpdatedAt:      template.UpdatedAt,
	}
}

func (c *templateService) CreateCollection(ctx context.Context, userId uint, req *dto.CreateCollectionRequest) (*dto.CreateCollectionResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	collection := entity.UserTemplateCollection{
		Uuid:      uuid.New(),
		UserId:    userId,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if err := uow.TemplateCollectionRepository().Create(ctx, &collection); err != nil {
		return nil, err
	}

	c.invalidateListing(ctx, "collection created")

	return &dto.CreateCollectionResponse{Uuid: collection.Uuid}, nil
}

// DeleteCollection removes the collection and its templates in one
// transaction. One level only: templates carry nothing that cascades further.
func (c *templateService) DeleteCollection(ctx context.Context, userId uint, collectionUuid uuid.UUID) (*dto.DeleteResult, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	collection, err := c.resolveOwnedCollection(ctx, uow, userId, collectionUuid)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.TemplateRepository().DeleteByCollectionUuid(ctx, collectionUuid); err != nil {
		return nil, err
	}
	if err := uow.TemplateCollectionRepository().Delete(ctx, collectionUuid); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.invalidateListing(ctx, "collection deleted")

	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeCollectionDeleted,
			Data: map[string]interface{}{
				"collection_uuid": collection.Uuid,
				"user_id":         userId,
				"name":            collection.Name,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.sysLogger.Warn("TemplateService", "Failed to publish event", map[string]interface{}{
				"event": events.TypeCollectionDeleted,
				"error": err.Error(),
			})
		}
	}

	return &dto.DeleteResult{Success: true}, nil
}

func (c *templateService) CreateTemplate(ctx context.Context, userId uint, collectionUuid uuid.UUID, req *dto.CreateTemplateRequest) (*dto.CreateTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.resolveOwnedCollection(ctx, uow, userId, collectionUuid); err != nil {
		return nil, err
	}

	template := entity.UserTemplate{
		CollectionUuid: collectionUuid,
		Name:           req.Name,
		Content:        req.Content,
		CreatedAt:      time.Now(),
	}
	if err := uow.TemplateRepository().Create(ctx, &template); err != nil {
		return nil, err
	}

	c.invalidateListing(ctx, "template created")

	return &dto.CreateTemplateResponse{Id: template.Id}, nil
}

func (c *templateService) GetTemplate(ctx context.Context, userId uint, collectionUuid uuid.UUID, templateId uint) (*dto.ShowTemplateResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.resolveOwnedCollection(ctx, uow, userId, collectionUuid); err != nil {
		return nil, err
	}

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: templateId},
		specification.ByCollectionUUID{CollectionUUID: collectionUuid},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, serverutils.NotFound("Template not found")
	}

	return &dto.ShowTemplateResponse{Template: mapTemplate(template)}, nil
}

// DeleteTemplate serves both the shared and the user-scoped route; either way
// the delete converges on the single repository primitive below.
func (c *templateService) DeleteTemplate(ctx context.Context, userId uint, collectionUuid uuid.UUID, templateId uint) (*dto.DeleteResult, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	if _, err := c.resolveOwnedCollection(ctx, uow, userId, collectionUuid); err != nil {
		return nil, err
	}

	template, err := uow.TemplateRepository().FindOne(ctx,
		specification.ByID{ID: templateId},
		specification.ByCollectionUUID{CollectionUUID: collectionUuid},
	)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, serverutils.NotFound("Template not found")
	}

	return c.deleteTemplate(ctx, uow, templateId)
}

func (c *templateService) deleteTemplate(ctx context.Context, uow unitofwork.UnitOfWork, templateId uint) (*dto.DeleteResult, error) {
	if err := uow.TemplateRepository().Delete(ctx, templateId); err != nil {
		return nil, serverutils.Internal("Failed to delete template", err)
	}

	c.invalidateListing(ctx, "template deleted")

	return &dto.DeleteResult{Success: true}, nil
}
