package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// LocationRepository defines the interface for location data access
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) error
	FindAll(ctx context.Context) ([]domain.Location, error)
	FindAllWithWorkspaces(ctx context.Context) ([]domain.Location, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	Update(ctx context.Context, location *domain.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// locationRepositoryImpl is the GORM implementation of LocationRepository
type locationRepositoryImpl struct {
	db *gorm.DB
}

// NewLocationRepository creates a new instance of LocationRepository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepositoryImpl{db: db}
}

func (r *locationRepositoryImpl) Create(ctx context.Context, location *domain.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepositoryImpl) FindAll(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindAllWithWorkspaces preloads active workspaces for the grouped listing
func (r *locationRepositoryImpl) FindAllWithWorkspaces(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location
	if err := r.db.WithContext(ctx).
		Preload("Workspaces", "is_active = ?", true).
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var location domain.Location
	if err := r.db.WithContext(ctx).
		Preload("Workspaces").
		Where("id = ?", id).
		First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepositoryImpl) Update(ctx context.Context, location *domain.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

// Delete removes a location. Workspaces keep their row; their locationId
// is cleared first so the FK does not block the delete.
func (r *locationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Workspace{}).
			Where("location_id = ?", id).
			Update("location_id", nil).Error; err != nil {
			return err
		}
		result := tx.Delete(&domain.Location{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *locationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Location{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
