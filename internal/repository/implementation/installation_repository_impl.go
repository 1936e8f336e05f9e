package implementation

import (
	"context"
	"errors"

	"chat-workspace-be/internal/entity"
	"chat-workspace-be/internal/mapper"
	"chat-workspace-be/internal/model"
	"chat-workspace-be/internal/repository/contract"
	"chat-workspace-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InstallationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkspaceMapper
}

func NewInstallationRepository(db *gorm.DB) contract.InstallationRepository {
	return &InstallationRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkspaceMapper(),
	}
}

func (r *InstallationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InstallationRepositoryImpl) Create(ctx context.Context, installation *entity.GithubAppInstallation) error {
	m := r.mapper.InstallationToModel(installation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*installation = *r.mapper.InstallationToEntity(m)
	return nil
}

func (r *InstallationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.GithubAppInstallation{}, id).Error
}

func (r *InstallationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GithubAppInstallation, error) {
	var m model.GithubAppInstallation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InstallationToEntity(&m), nil
}

func (r *InstallationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GithubAppInstallation, error) {
	var models []*model.GithubAppInstallation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.GithubAppInstallation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.InstallationToEntity(m)
	}
	return entities, nil
}

func (r *InstallationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GithubAppInstallation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
