package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByCollectionUUID struct {
	CollectionUUID uuid.UUID
}

func (s ByCollectionUUID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("collection_uuid = ?", s.CollectionUUID)
}
