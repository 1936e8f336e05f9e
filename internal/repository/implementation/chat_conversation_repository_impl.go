package implementation

import (
	"context"
	"errors"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/mapper"
	"chat-workspace-be/internal/model"
	"chat-workspace-be/internal/repository/contract"
	"chat-workspace-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatConversationRepository(db *gorm.DB) contract.ChatConversationRepository {
	return &ChatConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.ChatConversation) error {
	m := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(m)
	return nil
}

func (r *ChatConversationRepositoryImpl) Update(ctx context.Context, conversation *entity.ChatConversation) error {
	m := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(m)
	return nil
}

func (r *ChatConversationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ChatConversation{}, id).Error
}

func (r *ChatConversationRepositoryImpl) DeleteAllByUserIdUnscoped(ctx context.Context, userId uint) error {
	return r.db.WithContext(ctx).Unscoped().Where("user_id = ?", userId).Delete(&model.ChatConversation{}).Error
}

func (r *ChatConversationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatConversation, error) {
	var m model.ChatConversation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ConversationToEntity(&m), nil
}

func (r *ChatConversationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatConversation, error) {
	var models []*model.ChatConversation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatConversation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ConversationToEntity(m)
	}
	return entities, nil
}

func (r *ChatConversationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatConversation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
