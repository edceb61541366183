package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// AssetProvisionRepository defines the interface for asset provision data access
type AssetProvisionRepository interface {
	Create(ctx context.Context, provision *domain.AssetProvision) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.AssetProvision, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AssetProvision, error)
	Update(ctx context.Context, provision *domain.AssetProvision) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// assetProvisionRepositoryImpl is the GORM implementation of AssetProvisionRepository
type assetProvisionRepositoryImpl struct {
	db *gorm.DB
}

// NewAssetProvisionRepository creates a new instance of AssetProvisionRepository
func NewAssetProvisionRepository(db *gorm.DB) AssetProvisionRepository {
	return &assetProvisionRepositoryImpl{db: db}
}

func (r *assetProvisionRepositoryImpl) Create(ctx context.Context, provision *domain.AssetProvision) error {
	return r.db.WithContext(ctx).Create(provision).Error
}

func (r *assetProvisionRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.AssetProvision, error) {
	var provisions []domain.AssetProvision
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&provisions).Error; err != nil {
		return nil, err
	}
	return provisions, nil
}

func (r *assetProvisionRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.AssetProvision, error) {
	var provision domain.AssetProvision
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&provision).Error; err != nil {
		return nil, err
	}
	return &provision, nil
}

func (r *assetProvisionRepositoryImpl) Update(ctx context.Context, provision *domain.AssetProvision) error {
	return r.db.WithContext(ctx).Save(provision).Error
}

func (r *assetProvisionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.AssetProvision{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *assetProvisionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.AssetProvision{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
