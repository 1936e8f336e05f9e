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

type ChatShareRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatShareRepository(db *gorm.DB) contract.ChatShareRepository {
	return &ChatShareRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatShareRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatShareRepositoryImpl) Create(ctx context.Context, share *entity.ChatConversationShare) error {
	m := r.mapper.ShareToModel(share)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*share = *r.mapper.ShareToEntity(m)
	return nil
}

func (r *ChatShareRepositoryImpl) DeleteByChatId(ctx context.Context, chatId uint) error {
	return r.db.WithContext(ctx).Where("chat_id = ?", chatId).Delete(&model.ChatConversationShare{}).Error
}

func (r *ChatShareRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatConversationShare, error) {
	var m model.ChatConversationShare
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ShareToEntity(&m), nil
}
