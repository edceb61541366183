package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// TechnologyRepository defines the interface for technology seed data access
type TechnologyRepository interface {
	Create(ctx context.Context, technology *domain.Technology) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.Technology, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Technology, error)
	Update(ctx context.Context, technology *domain.Technology) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// technologyRepositoryImpl is the GORM implementation of TechnologyRepository
type technologyRepositoryImpl struct {
	db *gorm.DB
}

// NewTechnologyRepository creates a new instance of TechnologyRepository
func NewTechnologyRepository(db *gorm.DB) TechnologyRepository {
	return &technologyRepositoryImpl{db: db}
}

func (r *technologyRepositoryImpl) Create(ctx context.Context, technology *domain.Technology) error {
	return r.db.WithContext(ctx).Create(technology).Error
}

func (r *technologyRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.Technology, error) {
	var technologies []domain.Technology
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&technologies).Error; err != nil {
		return nil, err
	}
	return technologies, nil
}

func (r *technologyRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Technology, error) {
	var technology domain.Technology
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&technology).Error; err != nil {
		return nil, err
	}
	return &technology, nil
}

func (r *technologyRepositoryImpl) Update(ctx context.Context, technology *domain.Technology) error {
	return r.db.WithContext(ctx).Save(technology).Error
}

func (r *technologyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Technology{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *technologyRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Technology{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
