package implementation

import (
	"context"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/mapper"
	"chat-workspace-be/internal/model"
	"chat-workspace-be/internal/repository/contract"
	"chat-workspace-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatFileRepository(db *gorm.DB) contract.ChatFileRepository {
	return &ChatFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatFileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatFileRepositoryImpl) Create(ctx context.Context, file *entity.ChatConversationFile) error {
	m := r.mapper.FileToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.FileToEntity(m)
	return nil
}

func (r *ChatFileRepositoryImpl) DeleteByChatId(ctx context.Context, chatId uint) error {
	return r.db.WithContext(ctx).Where("chat_id = ?", chatId).Delete(&model.ChatConversationFile{}).Error
}

func (r *ChatFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatConversationFile, error) {
	var models []*model.ChatConversationFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatConversationFile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FileToEntity(m)
	}
	return entities, nil
}

func (r *ChatFileRepositoryImpl) FindAllByUserId(ctx context.Context, userId uint) ([]*entity.ChatConversationFile, error) {
	var models []*model.ChatConversationFile
	err := r.db.WithContext(ctx).
		Joins("JOIN chat_conversations ON chat_conversations.id = chat_conversation_files.chat_id").
		Where("chat_conversations.user_id = ? AND chat_conversations.deleted_at IS NULL", userId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatConversationFile, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FileToEntity(m)
	}
	return entities, nil
}

func (r *ChatFileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatConversationFile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
