package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserTemplateCollection struct {
	Uuid      uuid.UUID
	UserId    uint
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type UserTemplate struct {
	Id             uint
	CollectionUuid uuid.UUID
	Name           string
	Content        string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
