package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/metrics"
	"startup-hub-api/internal/repository"
	"startup-hub-api/internal/response"
)

const entityWorkspace = "workspace"

// rankingSize is how many workspaces the like ranking returns
const rankingSize = 10

// WorkspaceService defines the interface for workspace business logic
type WorkspaceService interface {
	CreateWorkspace(ctx context.Context, req *dto.CreateWorkspaceRequest) (*domain.Workspace, error)
	GetWorkspaces(ctx context.Context, opts ListOptions) ([]domain.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	ReplaceWorkspace(ctx context.Context, id uuid.UUID, req *dto.CreateWorkspaceRequest) (*domain.Workspace, error)
	PatchWorkspace(ctx context.Context, id uuid.UUID, req *dto.PatchWorkspaceRequest) (*domain.Workspace, error)
	DeleteWorkspace(ctx context.Context, id uuid.UUID) error
	ToggleLike(ctx context.Context, workspaceID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error)
	GetLikeStatus(ctx context.Context, workspaceID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error)
	GetRanking(ctx context.Context) ([]dto.WorkspaceRankingEntry, error)
}

// workspaceServiceImpl is the implementation of WorkspaceService
type workspaceServiceImpl struct {
	repo     repository.WorkspaceRepository
	likeRepo repository.WorkspaceLikeRepository
	cache    *ListingCache
	metrics  *metrics.Metrics
}

// NewWorkspaceService creates a new instance of WorkspaceService
func NewWorkspaceService(repo repository.WorkspaceRepository, likeRepo repository.WorkspaceLikeRepository, cache *ListingCache, m *metrics.Metrics) WorkspaceService {
	return &workspaceServiceImpl{repo: repo, likeRepo: likeRepo, cache: cache, metrics: m}
}

func (s *workspaceServiceImpl) CreateWorkspace(ctx context.Context, req *dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	workspace := &domain.Workspace{
		Name:          req.Name,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		LocationID:    req.LocationID,
		Website:       req.Website,
		FacilityCards: datatypes.JSON(req.FacilityCards),
		NearbySpots:   datatypes.JSON(req.NearbySpots),
		CategoryFlags: datatypes.JSON(req.CategoryFlags),
		IsActive:      true,
	}
	if workspace.Country == "" {
		workspace.Country = domain.CountryJapan
	}
	if req.IsActive != nil {
		workspace.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, workspace); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ワークスペースの作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityWorkspace)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityWorkspace)
	}
	return workspace, nil
}

func (s *workspaceServiceImpl) GetWorkspaces(ctx context.Context, opts ListOptions) ([]domain.Workspace, error) {
	if opts.Public() {
		var cached []domain.Workspace
		if s.cache.Get(ctx, entityWorkspace, &cached) {
			return cached, nil
		}
	}

	workspaces, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ワークスペース一覧の取得に失敗しました", err.Error())
	}

	if opts.Public() {
		s.cache.Set(ctx, entityWorkspace, workspaces)
	}
	return workspaces, nil
}

func (s *workspaceServiceImpl) GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	workspace, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("ワークスペースが見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "ワークスペースの取得に失敗しました", err.Error())
	}
	return workspace, nil
}

func (s *workspaceServiceImpl) ReplaceWorkspace(ctx context.Context, id uuid.UUID, req *dto.CreateWorkspaceRequest) (*domain.Workspace, error) {
	workspace, err := s.GetWorkspaceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	workspace.Name = req.Name
	workspace.Description = req.Description
	workspace.ImageURL = req.ImageURL
	workspace.Address = req.Address
	workspace.City = req.City
	workspace.Country = req.Country
	workspace.LocationID = req.LocationID
	workspace.Website = req.Website
	workspace.FacilityCards = datatypes.JSON(req.FacilityCards)
	workspace.NearbySpots = datatypes.JSON(req.NearbySpots)
	workspace.CategoryFlags = datatypes.JSON(req.CategoryFlags)
	if workspace.Country == "" {
		workspace.Country = domain.CountryJapan
	}
	workspace.IsActive = true
	if req.IsActive != nil {
		workspace.IsActive = *req.IsActive
	}
	workspace.Location = nil

	if err := s.repo.Update(ctx, workspace); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ワークスペースの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityWorkspace)
	return workspace, nil
}

func (s *workspaceServiceImpl) PatchWorkspace(ctx context.Context, id uuid.UUID, req *dto.PatchWorkspaceRequest) (*domain.Workspace, error) {
	workspace, err := s.GetWorkspaceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		workspace.Name = *req.Name
	}
	if req.Description != nil {
		workspace.Description = *req.Description
	}
	if req.ImageURL != nil {
		workspace.ImageURL = *req.ImageURL
	}
	if req.Address != nil {
		workspace.Address = *req.Address
	}
	if req.City != nil {
		workspace.City = *req.City
	}
	if req.Country != nil {
		workspace.Country = *req.Country
	}
	if req.LocationID != nil {
		workspace.LocationID = req.LocationID
	}
	if req.Website != nil {
		workspace.Website = *req.Website
	}
	if req.FacilityCards != nil {
		workspace.FacilityCards = datatypes.JSON(req.FacilityCards)
	}
	if req.NearbySpots != nil {
		workspace.NearbySpots = datatypes.JSON(req.NearbySpots)
	}
	if req.CategoryFlags != nil {
		workspace.CategoryFlags = datatypes.JSON(req.CategoryFlags)
	}
	if req.IsActive != nil {
		workspace.IsActive = *req.IsActive
	}
	workspace.Location = nil

	if err := s.repo.Update(ctx, workspace); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ワークスペースの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityWorkspace)
	return workspace, nil
}

func (s *workspaceServiceImpl) DeleteWorkspace(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("ワークスペースが見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "ワークスペースの削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityWorkspace)
	return nil
}

// ToggleLike flips the like state for the workspace/client pair
func (s *workspaceServiceImpl) ToggleLike(ctx context.Context, workspaceID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
	if _, err := s.GetWorkspaceByID(ctx, workspaceID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.FindByWorkspaceAndClient(ctx, workspaceID, clientID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね状態の取得に失敗しました", err.Error())
	}

	liked := false
	if existing != nil {
		if err := s.likeRepo.Delete(ctx, existing.ID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "いいねの取り消しに失敗しました", err.Error())
		}
	} else {
		like := &domain.WorkspaceLike{WorkspaceID: workspaceID, ClientID: clientID}
		if err := s.likeRepo.Create(ctx, like); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "いいねの登録に失敗しました", err.Error())
		}
		liked = true
	}

	count, err := s.likeRepo.CountByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね数の取得に失敗しました", err.Error())
	}

	if s.metrics != nil {
		action := "unlike"
		if liked {
			action = "like"
		}
		s.metrics.RecordLikeToggle("workspace", action)
	}
	return &dto.LikeStatusResponse{IsLiked: liked, LikeCount: count}, nil
}

// GetLikeStatus reports whether the client liked the workspace, with the count
func (s *workspaceServiceImpl) GetLikeStatus(ctx context.Context, workspaceID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
	if _, err := s.GetWorkspaceByID(ctx, workspaceID); err != nil {
		return nil, err
	}

	existing, err := s.likeRepo.FindByWorkspaceAndClient(ctx, workspaceID, clientID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね状態の取得に失敗しました", err.Error())
	}
	count, err := s.likeRepo.CountByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "いいね数の取得に失敗しました", err.Error())
	}
	return &dto.LikeStatusResponse{IsLiked: existing != nil, LikeCount: count}, nil
}

// GetRanking returns the ten most liked workspaces. Counting happens in
// memory over likes ordered oldest first, so tied workspaces keep the
// order their first like arrived in.
func (s *workspaceServiceImpl) GetRanking(ctx context.Context) ([]dto.WorkspaceRankingEntry, error) {
	likes, err := s.likeRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ランキングの取得に失敗しました", err.Error())
	}

	counts := make(map[uuid.UUID]int64)
	var order []uuid.UUID
	for _, like := range likes {
		if _, seen := counts[like.WorkspaceID]; !seen {
			order = append(order, like.WorkspaceID)
		}
		counts[like.WorkspaceID]++
	}

	// stable sort by count desc keeps first-seen order for ties
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && counts[order[j]] > counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
	if len(order) > rankingSize {
		order = order[:rankingSize]
	}

	workspaces, err := s.repo.FindByIDs(ctx, order)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ランキングの取得に失敗しました", err.Error())
	}
	byID := make(map[uuid.UUID]domain.Workspace, len(workspaces))
	for _, w := range workspaces {
		byID[w.ID] = w
	}

	entries := make([]dto.WorkspaceRankingEntry, 0, len(order))
	for _, id := range order {
		w, ok := byID[id]
		if !ok || !w.IsActive {
			// like rows can outlive a workspace briefly; skip orphans
			continue
		}
		entries = append(entries, dto.WorkspaceRankingEntry{
			WorkspaceID: w.ID,
			Name:        w.Name,
			ImageURL:    w.ImageURL,
			City:        w.City,
			LikeCount:   counts[id],
		})
	}
	return entries, nil
}
