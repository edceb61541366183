package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// StartupBoardRepository defines the interface for startup board data access
type StartupBoardRepository interface {
	Create(ctx context.Context, board *domain.StartupBoard) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.StartupBoard, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error)
	Update(ctx context.Context, board *domain.StartupBoard) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// startupBoardRepositoryImpl is the GORM implementation of StartupBoardRepository
type startupBoardRepositoryImpl struct {
	db *gorm.DB
}

// NewStartupBoardRepository creates a new instance of StartupBoardRepository
func NewStartupBoardRepository(db *gorm.DB) StartupBoardRepository {
	return &startupBoardRepositoryImpl{db: db}
}

func (r *startupBoardRepositoryImpl) Create(ctx context.Context, board *domain.StartupBoard) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *startupBoardRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.StartupBoard, error) {
	var boards []domain.StartupBoard
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("created_at DESC").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *startupBoardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error) {
	var board domain.StartupBoard
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *startupBoardRepositoryImpl) Update(ctx context.Context, board *domain.StartupBoard) error {
	return r.db.WithContext(ctx).Save(board).Error
}

// Delete removes a board and its like rows via FK cascade
func (r *startupBoardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.StartupBoard{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *startupBoardRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.StartupBoard{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
