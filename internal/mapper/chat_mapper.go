package mapper

import (
	"time"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/model"

	"gorm.io/gorm"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ConversationToEntity(c *model.ChatConversation) *entity.ChatConversation {
	if c == nil {
		return nil
	}

	var deletedAt *time.Time
	if c.DeletedAt.Valid {
		t := c.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.ChatConversation{
		Id:            c.Id,
		UserId:        c.UserId,
		Title:         c.Title,
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     c.DeletedAt.Valid,
	}
}

func (m *ChatMapper) ConversationToModel(c *entity.ChatConversation) *model.ChatConversation {
	if c == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if c.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *c.DeletedAt, Valid: true}
	} else if c.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.ChatConversation{
		Id:            c.Id,
		UserId:        c.UserId,
		Title:         c.Title,
		LastMessageAt: c.LastMessageAt,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *ChatMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	return &model.ChatMessage{
		Id:        msg.Id,
		ChatId:    msg.ChatId,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) FileToEntity(f *model.ChatConversationFile) *entity.ChatConversationFile {
	if f == nil {
		return nil
	}
	return &entity.ChatConversationFile{
		Id:        f.Id,
		ChatId:    f.ChatId,
		Name:      f.Name,
		Content:   f.Content,
		Metadata:  f.Metadata,
		CreatedAt: f.CreatedAt,
	}
}

func (m *ChatMapper) FileToModel(f *entity.ChatConversationFile) *model.ChatConversationFile {
	if f == nil {
		return nil
	}
	return &model.ChatConversationFile{
		Id:        f.Id,
		ChatId:    f.ChatId,
		Name:      f.Name,
		Content:   f.Content,
		Metadata:  f.Metadata,
		CreatedAt: f.CreatedAt,
	}
}

func (m *ChatMapper) ShareToEntity(s *model.ChatConversationShare) *entity.ChatConversationShare {
	if s == nil {
		return nil
	}
	return &entity.ChatConversationShare{
		ChatId:    s.ChatId,
		Uuid:      s.Uuid,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ShareToModel(s *entity.ChatConversationShare) *model.ChatConversationShare {
	if s == nil {
		return nil
	}
	return &model.ChatConversationShare{
		ChatId:    s.ChatId,
		Uuid:      s.Uuid,
		CreatedAt: s.CreatedAt,
	}
}
