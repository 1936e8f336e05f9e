package mapper

import (
	"time"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) CollectionToEntity(c *model.UserTemplateCollection) *entity.UserTemplateCollection {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.UserTemplateCollection{
		Uuid:      c.Uuid,
		UserId:    c.UserId,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *TemplateMapper) CollectionToModel(c *entity.UserTemplateCollection) *model.UserTemplateCollection {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.UserTemplateCollection{
		Uuid:      c.Uuid,
		UserId:    c.UserId,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *TemplateMapper) TemplateToEntity(t *model.UserTemplate) *entity.UserTemplate {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.UserTemplate{
		Id:             t.Id,
		CollectionUuid: t.CollectionUuid,
		Name:           t.Name,
		Content:        t.Content,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TemplateMapper) TemplateToModel(t *entity.UserTemplate) *model.UserTemplate {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.UserTemplate{
		Id:             t.Id,
		CollectionUuid: t.CollectionUuid,
		Name:           t.Name,
		Content:        t.Content,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TemplateMapper) TemplatesToEntities(templates []*model.UserTemplate) []*entity.UserTemplate {
	entities := make([]*entity.UserTemplate, len(templates))
	for i, t := range templates {
		entities[i] = m.TemplateToEntity(t)
	}
	return entities
}
