package model

import (
	"time"

	"gorm.io/datatypes"
)

type ProjectContext struct {
	UserId    uint           `gorm:"primaryKey"`
	ProjectId uint           `gorm:"primaryKey"`
	Context   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (ProjectContext) TableName() string {
	return "project_contexts"
}
