package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCollectionRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateCollectionResponse struct {
	Uuid uuid.UUID `json:"uuid"`
}

type CreateTemplateRequest struct {
	Name    string `json:"name" validate:"required"`
	Content string `json:"content"`
}

type CreateTemplateResponse struct {
	Id uint `json:"id"`
}

type TemplateResponse struct {
	Id             uint       `json:"id"`
	CollectionUuid uuid.UUID  `json:"collection_uuid"`
	Name           string     `json:"name"`
	Content        string     `json:"content"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type ShowTemplateResponse struct {
	Template *TemplateResponse `json:"template"`
}

type CollectionResponse struct {
	Uuid      uuid.UUID           `json:"uuid"`
	Name      string              `json:"name"`
	CreatedAt time.Time           `json:"created_at"`
	Templates []*TemplateResponse `json:"templates"`
}

type CollectionsListResponse struct {
	Collections []*CollectionResponse `json:"collections"`
	Total       int64                 `json:"total"`
}
