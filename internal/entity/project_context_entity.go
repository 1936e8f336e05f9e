package entity

import (
	"time"

	"gorm.io/datatypes"
)

type ProjectContext struct {
	UserId    uint
	ProjectId uint
	Context   datatypes.JSON
	CreatedAt time.Time
}
