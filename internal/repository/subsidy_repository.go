package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// SubsidyRepository defines the interface for subsidy data access
type SubsidyRepository interface {
	Create(ctx context.Context, subsidy *domain.Subsidy) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.Subsidy, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Subsidy, error)
	Update(ctx context.Context, subsidy *domain.Subsidy) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// subsidyRepositoryImpl is the GORM implementation of SubsidyRepository
type subsidyRepositoryImpl struct {
	db *gorm.DB
}

// NewSubsidyRepository creates a new instance of SubsidyRepository
func NewSubsidyRepository(db *gorm.DB) SubsidyRepository {
	return &subsidyRepositoryImpl{db: db}
}

func (r *subsidyRepositoryImpl) Create(ctx context.Context, subsidy *domain.Subsidy) error {
	return r.db.WithContext(ctx).Create(subsidy).Error
}

func (r *subsidyRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.Subsidy, error) {
	var subsidies []domain.Subsidy
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&subsidies).Error; err != nil {
		return nil, err
	}
	return subsidies, nil
}

func (r *subsidyRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subsidy, error) {
	var subsidy domain.Subsidy
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subsidy).Error; err != nil {
		return nil, err
	}
	return &subsidy, nil
}

func (r *subsidyRepositoryImpl) Update(ctx context.Context, subsidy *domain.Subsidy) error {
	return r.db.WithContext(ctx).Save(subsidy).Error
}

func (r *subsidyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Subsidy{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *subsidyRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Subsidy{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
