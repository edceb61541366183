package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// OpenCallRepository defines the interface for open-call data access
type OpenCallRepository interface {
	Create(ctx context.Context, openCall *domain.OpenCall) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.OpenCall, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.OpenCall, error)
	Update(ctx context.Context, openCall *domain.OpenCall) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// openCallRepositoryImpl is the GORM implementation of OpenCallRepository
type openCallRepositoryImpl struct {
	db *gorm.DB
}

// NewOpenCallRepository creates a new instance of OpenCallRepository
func NewOpenCallRepository(db *gorm.DB) OpenCallRepository {
	return &openCallRepositoryImpl{db: db}
}

func (r *openCallRepositoryImpl) Create(ctx context.Context, openCall *domain.OpenCall) error {
	return r.db.WithContext(ctx).Create(openCall).Error
}

func (r *openCallRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.OpenCall, error) {
	var openCalls []domain.OpenCall
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&openCalls).Error; err != nil {
		return nil, err
	}
	return openCalls, nil
}

func (r *openCallRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.OpenCall, error) {
	var openCall domain.OpenCall
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&openCall).Error; err != nil {
		return nil, err
	}
	return &openCall, nil
}

func (r *openCallRepositoryImpl) Update(ctx context.Context, openCall *domain.OpenCall) error {
	return r.db.WithContext(ctx).Save(openCall).Error
}

func (r *openCallRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.OpenCall{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *openCallRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.OpenCall{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
