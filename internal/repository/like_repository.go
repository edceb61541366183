package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// BoardLikeRepository defines the interface for startup board like data access
type BoardLikeRepository interface {
	FindByBoardAndClient(ctx context.Context, boardID uuid.UUID, clientID string) (*domain.BoardLike, error)
	Create(ctx context.Context, like *domain.BoardLike) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
}

// boardLikeRepositoryImpl is the GORM implementation of BoardLikeRepository
type boardLikeRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardLikeRepository creates a new instance of BoardLikeRepository
func NewBoardLikeRepository(db *gorm.DB) BoardLikeRepository {
	return &boardLikeRepositoryImpl{db: db}
}

// FindByBoardAndClient finds a like row for the board/client pair;
// returns (nil, nil) when no row exists
func (r *boardLikeRepositoryImpl) FindByBoardAndClient(ctx context.Context, boardID uuid.UUID, clientID string) (*domain.BoardLike, error) {
	var like domain.BoardLike
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND client_id = ?", boardID, clientID).
		First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *boardLikeRepositoryImpl) Create(ctx context.Context, like *domain.BoardLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *boardLikeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.BoardLike{}, "id = ?", id).Error
}

func (r *boardLikeRepositoryImpl) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.BoardLike{}).
		Where("board_id = ?", boardID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// WorkspaceLikeRepository defines the interface for workspace like data access
type WorkspaceLikeRepository interface {
	FindByWorkspaceAndClient(ctx context.Context, workspaceID uuid.UUID, clientID string) (*domain.WorkspaceLike, error)
	Create(ctx context.Context, like *domain.WorkspaceLike) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	FindAllOrdered(ctx context.Context) ([]domain.WorkspaceLike, error)
}

// workspaceLikeRepositoryImpl is the GORM implementation of WorkspaceLikeRepository
type workspaceLikeRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkspaceLikeRepository creates a new instance of WorkspaceLikeRepository
func NewWorkspaceLikeRepository(db *gorm.DB) WorkspaceLikeRepository {
	return &workspaceLikeRepositoryImpl{db: db}
}

// FindByWorkspaceAndClient finds a like row for the workspace/client pair;
// returns (nil, nil) when no row exists
func (r *workspaceLikeRepositoryImpl) FindByWorkspaceAndClient(ctx context.Context, workspaceID uuid.UUID, clientID string) (*domain.WorkspaceLike, error) {
	var like domain.WorkspaceLike
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND client_id = ?", workspaceID, clientID).
		First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *workspaceLikeRepositoryImpl) Create(ctx context.Context, like *domain.WorkspaceLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *workspaceLikeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.WorkspaceLike{}, "id = ?", id).Error
}

func (r *workspaceLikeRepositoryImpl) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.WorkspaceLike{}).
		Where("workspace_id = ?", workspaceID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindAllOrdered returns every workspace like, oldest first. The ranking
// counts in memory so ties keep the order the first like arrived in.
func (r *workspaceLikeRepositoryImpl) FindAllOrdered(ctx context.Context) ([]domain.WorkspaceLike, error) {
	var likes []domain.WorkspaceLike
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}
