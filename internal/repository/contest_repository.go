package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// ContestRepository defines the interface for contest data access
type ContestRepository interface {
	Create(ctx context.Context, contest *domain.Contest) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.Contest, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error)
	Update(ctx context.Context, contest *domain.Contest) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// contestRepositoryImpl is the GORM implementation of ContestRepository
type contestRepositoryImpl struct {
	db *gorm.DB
}

// NewContestRepository creates a new instance of ContestRepository
func NewContestRepository(db *gorm.DB) ContestRepository {
	return &contestRepositoryImpl{db: db}
}

// Create creates a new contest
func (r *contestRepositoryImpl) Create(ctx context.Context, contest *domain.Contest) error {
	return r.db.WithContext(ctx).Create(contest).Error
}

// FindAll finds all contests. Inactive rows are returned only when
// includeInactive is set (admin view).
func (r *contestRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.Contest, error) {
	var contests []domain.Contest
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&contests).Error; err != nil {
		return nil, err
	}
	return contests, nil
}

// FindByID finds a contest by ID
func (r *contestRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
	var contest domain.Contest
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contest).Error; err != nil {
		return nil, err
	}
	return &contest, nil
}

// Update saves all fields of a contest
func (r *contestRepositoryImpl) Update(ctx context.Context, contest *domain.Contest) error {
	return r.db.WithContext(ctx).Save(contest).Error
}

// Delete removes a contest row permanently
func (r *contestRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Contest{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count counts all contest rows regardless of active state
func (r *contestRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Contest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
