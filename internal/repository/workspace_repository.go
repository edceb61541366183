package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// WorkspaceRepository defines the interface for workspace data access
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace *domain.Workspace) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.Workspace, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Workspace, error)
	Update(ctx context.Context, workspace *domain.Workspace) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// workspaceRepositoryImpl is the GORM implementation of WorkspaceRepository
type workspaceRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new instance of WorkspaceRepository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepositoryImpl{db: db}
}

func (r *workspaceRepositoryImpl) Create(ctx context.Context, workspace *domain.Workspace) error {
	return r.db.WithContext(ctx).Create(workspace).Error
}

func (r *workspaceRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.Workspace, error) {
	var workspaces []domain.Workspace
	query := r.db.WithContext(ctx).Preload("Location")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *workspaceRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	var workspace domain.Workspace
	if err := r.db.WithContext(ctx).
		Preload("Location").
		Where("id = ?", id).
		First(&workspace).Error; err != nil {
		return nil, err
	}
	return &workspace, nil
}

// FindByIDs fetches workspaces in no particular order; ranking order is
// the caller's concern
func (r *workspaceRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Workspace, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var workspaces []domain.Workspace
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&workspaces).Error; err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (r *workspaceRepositoryImpl) Update(ctx context.Context, workspace *domain.Workspace) error {
	return r.db.WithContext(ctx).Save(workspace).Error
}

// Delete removes a workspace and its like rows via FK cascade
func (r *workspaceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Workspace{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *workspaceRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Workspace{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
