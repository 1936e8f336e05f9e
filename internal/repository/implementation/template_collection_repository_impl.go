package implementation

import (
	"context"
	"errors"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/mapper"
	"chat-workspace-be/internal/model"
	"chat-workspace-be/internal/repository/contract"
	"chat-workspace-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TemplateCollectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TemplateMapper
}

func NewTemplateCollectionRepository(db *gorm.DB) contract.TemplateCollectionRepository {
	return &TemplateCollectionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTemplateMapper(),
	}
}

func (r *TemplateCollectionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TemplateCollectionRepositoryImpl) Create(ctx context.Context, collection *entity.UserTemplateCollection) error {
	m := r.mapper.CollectionToModel(collection)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*collection = *r.mapper.CollectionToEntity(m)
	return nil
}

func (r *TemplateCollectionRepositoryImpl) Update(ctx context.Context, collection *entity.UserTemplateCollection) error {
	m := r.mapper.CollectionToModel(collection)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*collection = *r.mapper.CollectionToEntity(m)
	return nil
}

func (r *TemplateCollectionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&model.UserTemplateCollection{}).Error
}

func (r *TemplateCollectionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.UserTemplateCollection, error) {
	var m model.UserTemplateCollection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CollectionToEntity(&m), nil
}

func (r *TemplateCollectionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserTemplateCollection, error) {
	var models []*model.UserTemplateCollection
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UserTemplateCollection, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CollectionToEntity(m)
	}
	return entities, nil
}

func (r *TemplateCollectionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.UserTemplateCollection{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
