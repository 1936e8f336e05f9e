package model

import (
	"time"

	"github.com/google/uuid"
)

type UserTemplateCollection struct {
	Uuid      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uint      `gorm:"not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserTemplateCollection) TableName() string {
	return "user_template_collections"
}

type UserTemplate struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	CollectionUuid uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Content        string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (UserTemplate) TableName() string {
	return "user_templates"
}
