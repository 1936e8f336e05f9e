package mapper

import (
	"time"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/model"

	"gorm.io/gorm"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var deletedAt *time.Time
	if u.DeletedAt.Valid {
		t := u.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:           u.Id,
		PrimaryEmail: u.PrimaryEmail,
		FullName:     u.FullName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    u.DeletedAt.Valid,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if u.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *u.DeletedAt, Valid: true}
	} else if u.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:           u.Id,
		PrimaryEmail: u.PrimaryEmail,
		FullName:     u.FullName,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

func (m *UserMapper) IdentityToEntity(i *model.OAuthIdentity) *entity.OAuthIdentity {
	if i == nil {
		return nil
	}
	return &entity.OAuthIdentity{
		Id:             i.Id,
		UserId:         i.UserId,
		Provider:       i.Provider,
		ProviderUserId: i.ProviderUserId,
		CreatedAt:      i.CreatedAt,
	}
}

func (m *UserMapper) IdentitiesToEntities(identities []*model.OAuthIdentity) []entity.OAuthIdentity {
	entities := make([]entity.OAuthIdentity, len(identities))
	for i, identity := range identities {
		entities[i] = *m.IdentityToEntity(identity)
	}
	return entities
}
