package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// FacilityRepository defines the interface for facility data access
type FacilityRepository interface {
	Create(ctx context.Context, facility *domain.Facility) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.Facility, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
	Update(ctx context.Context, facility *domain.Facility) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// facilityRepositoryImpl is the GORM implementation of FacilityRepository
type facilityRepositoryImpl struct {
	db *gorm.DB
}

// NewFacilityRepository creates a new instance of FacilityRepository
func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepositoryImpl{db: db}
}

func (r *facilityRepositoryImpl) Create(ctx context.Context, facility *domain.Facility) error {
	return r.db.WithContext(ctx).Create(facility).Error
}

func (r *facilityRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.Facility, error) {
	var facilities []domain.Facility
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&facilities).Error; err != nil {
		return nil, err
	}
	return facilities, nil
}

func (r *facilityRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	var facility domain.Facility
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&facility).Error; err != nil {
		return nil, err
	}
	return &facility, nil
}

func (r *facilityRepositoryImpl) Update(ctx context.Context, facility *domain.Facility) error {
	return r.db.WithContext(ctx).Save(facility).Error
}

func (r *facilityRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Facility{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *facilityRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Facility{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
