package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/area"
	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/metrics"
	"startup-hub-api/internal/repository"
	"startup-hub-api/internal/response"
)

const entityStartupBoard = "startup_board"

// StartupBoardService defines the interface for startup board business logic
type StartupBoardService interface {
	CreateStartupBoard(ctx context.Context, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error)
	GetStartupBoards(ctx context.Context, opts ListOptions) ([]domain.StartupBoard, error)
	GetStartupBoardsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.StartupBoard], error)
	GetStartupBoardByID(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error)
	ReplaceStartupBoard(ctx context.Context, id uuid.UUID, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error)
	PatchStartupBoard(ctx context.Context, id uuid.UUID, req *dto.PatchStartupBoardRequest) (*domain.StartupBoard, error)
	DeleteStartupBoard(ctx context.Context, id uuid.UUID) error
	ToggleLike(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error)
	GetLikeStatus(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error)
}

// startupBoardServiceImpl is the implementation of StartupBoardService
type startupBoardServiceImpl struct {
	repo     repository.StartupBoardRepository
	likeRepo repository.BoardLikeRepository
	cache    *ListingCache
	metrics  *metrics.Metrics
}

// NewStartupBoardService creates a new instance of StartupBoardService
func NewStartupBoardService(repo repository.StartupBoardRepository, likeRepo repository.BoardLikeRepository, cache *ListingCache, m *metrics.Metrics) StartupBoardService {
	return &startupBoardServiceImpl{repo: repo, likeRepo: likeRepo, cache: cache, metrics: m}
}

func startupBoardSortKey(b domain.StartupBoard) area.SortKey {
	return area.SortKey{Area: b.Area, CreatedAt: b.CreatedAt}
}

func (s *startupBoardServiceImpl) CreateStartupBoard(ctx context.Context, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error) {
	board := &domain.StartupBoard{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Area:        req.Area,
		Website:     req.Website,
		IsActive:    true,
	}
	if req.IsActive != nil {
		board.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "スタートアップボードの作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityStartupBoard)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityStartupBoard)
	}
	return board, nil
}

func (s *startupBoardServiceImpl) GetStartupBoards(ctx context.Context, opts ListOptions) ([]domain.StartupBoard, error) {
	if opts.Public() {
		var cached []domain.StartupBoard
		if s.cache.Get(ctx, entityStartupBoard, &cached) {
			return cached, nil
		}
	}

	boards, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "スタートアップボード一覧の取得に失敗しました", err.Error())
	}
	area.Sort(boards, startupBoardSortKey)

	if opts.Public() {
		s.cache.Set(ctx, entityStartupBoard, boards)
	}
	return boards, nil
}

func (s *startupBoardServiceImpl) GetStartupBoardsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.StartupBoard], error) {
	boards, err := s.GetStartupBoards(ctx, opts)
	if err != nil {
		return nil, err
	}
	return area.GroupByArea(boards, func(b domain.StartupBoard) string { return b.Area }), nil
}

func (s *startupBoardServiceImpl) GetStartupBoardByID(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error) {
	board, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("スタートアップボードが見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "スタートアップボードの取得に失敗しました", err.Error())
	}
	return board, nil
}

func (s *startupBoardServiceImpl) ReplaceStartupBoard(ctx context.Context, id uuid.UUID, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error) {
	board, err := s.GetStartupBoardByID(ctx, id)
	if err != nil {
		return nil, err
	}

	board.Name = req.Name
	board.Description = req.Description
	board.ImageURL = req.ImageURL
	board.Area = req.Area
	board.Website = req.Website
	board.IsActive = true
	if req.IsActive != nil {
		board.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "スタートアップボードの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityStartupBoard)
	return board, nil
}

func (s *startupBoardServiceImpl) PatchStartupBoard(ctx context.Context, id uuid.UUID, req *dto.PatchStartupBoardRequest) (*domain.StartupBoard, error) {
	board, err := s.GetStartupBoardByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Description != nil {
		board.Description = *req.Description
	}
	if req.ImageURL != nil {
		board.ImageURL = *req.ImageURL
	}
	if req.Area != nil {
		board.Area = *req.Area
	}
	if req.Website != nil {
		board.Website = *req.Website
	}
	if req.IsActive != nil {
		board.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "スタートアップボードの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityStartupBoard)
	return board, nil
}

func (s *startupBoardServiceImpl) DeleteStartupBoard(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("スタートアップボードが見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "スタートアップボードの削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityStartupBoard)
	return nil
}

// ToggleLike flips the like state for the board/client pair and returns
// the new state with the fresh count
func (s *startupBoardServiceImpl) ToggleLike(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
	if _, err := s.GetStartupBoardByID(ctx, boardID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.FindByBoardAndClient(ctx, boardID, clientID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね状態の取得に失敗しました", err.Error())
	}

	liked := false
	if existing != nil {
		if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "いいねの取り消しに失敗しました", err.Error())
		}
	} else {
		like := &domain.BoardLike{BoardID: boardID, ClientID: clientID}
		if err := s.likeRepo.Create(ctx, like); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "いいねの登録に失敗しました", err.Error())
		}
		liked = true
	}

	count, err := s.likeRepo.CountByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね数の取得に失敗しました", err.Error())
	}

	if s.metrics != nil {
		action := "unlike"
		if liked {
			action = "like"
		}
		s.metrics.RecordLikeToggle("board", action)
	}
	return &dto.LikeStatusResponse{IsLiked: liked, LikeCount: count}, nil
}

// GetLikeStatus reports whether the client liked the board, with the count
func (s *startupBoardServiceImpl) GetLikeStatus(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
	if _, err := s.GetStartupBoardByID(ctx, boardID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.FindByBoardAndClient(ctx, boardID, clientID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね状態の取得に失敗しました", err.Error())
	}
	count, err := s.likeRepo.CountByBoard(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね数の取得に失敗しました", err.Error())
	}
	return &dto.LikeStatusResponse{IsLiked: existing != nil, LikeCount: count}, nil
}
