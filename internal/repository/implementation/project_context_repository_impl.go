package implementation

import (
	"context"
	"errors"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/mapper"
	"chat-workspace-be/internal/model"
	"chat-workspace-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectContextRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkspaceMapper
}

func NewProjectContextRepository(db *gorm.DB) contract.ProjectContextRepository {
	return &ProjectContextRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkspaceMapper(),
	}
}

func (r *ProjectContextRepositoryImpl) Find(ctx context.Context, userId, projectId uint) (*entity.ProjectContext, error) {
	var m model.ProjectContext
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userId, projectId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProjectContextToEntity(&m), nil
}

func (r *ProjectContextRepositoryImpl) Save(ctx context.Context, projectContext *entity.ProjectContext) error {
	m := r.mapper.ProjectContextToModel(projectContext)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "project_id"}},
		UpdateAll: true,
	}).Create(m).Error
	if err != nil {
		return err
	}
	*projectContext = *r.mapper.ProjectContextToEntity(m)
	return nil
}
