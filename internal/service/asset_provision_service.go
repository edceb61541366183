package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/area"
	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/metrics"
	"startup-hub-api/internal/repository"
	"startup-hub-api/internal/response"
)

const entityAssetProvision = "asset_provision"

// AssetProvisionService defines the interface for asset provision business logic
type AssetProvisionService interface {
	CreateAssetProvision(ctx context.Context, req *dto.CreateAssetProvisionRequest) (*domain.AssetProvision, error)
	GetAssetProvisions(ctx context.Context, opts ListOptions) ([]domain.AssetProvision, error)
	GetAssetProvisionsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.AssetProvision], error)
	GetAssetProvisionByID(ctx context.Context, id uuid.UUID) (*domain.AssetProvision, error)
	ReplaceAssetProvision(ctx context.Context, id uuid.UUID, req *dto.CreateAssetProvisionRequest) (*domain.AssetProvision, error)
	PatchAssetProvision(ctx context.Context, id uuid.UUID, req *dto.PatchAssetProvisionRequest) (*domain.AssetProvision, error)
	DeleteAssetProvision(ctx context.Context, id uuid.UUID) error
}

// assetProvisionServiceImpl is the implementation of AssetProvisionService
type assetProvisionServiceImpl struct {
	repo    repository.AssetProvisionRepository
	cache   *ListingCache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewAssetProvisionService creates a new instance of AssetProvisionService
func NewAssetProvisionService(repo repository.AssetProvisionRepository, cache *ListingCache, m *metrics.Metrics) AssetProvisionService {
	return &assetProvisionServiceImpl{repo: repo, cache: cache, metrics: m, now: time.Now}
}

func assetProvisionSortKey(p domain.AssetProvision) area.SortKey {
	return area.SortKey{Area: p.Area, Deadline: p.Deadline, CreatedAt: p.CreatedAt}
}

func (s *assetProvisionServiceImpl) CreateAssetProvision(ctx context.Context, req *dto.CreateAssetProvisionRequest) (*domain.AssetProvision, error) {
	provision := &domain.AssetProvision{
		Title:       req.Title,
		Description: req.Description,
		Organizer:   req.Organizer,
		Area:        req.Area,
		AssetType:   req.AssetType,
		Deadline:    req.Deadline,
		Website:     req.Website,
		IsActive:    true,
	}
	if req.IsActive != nil {
		provision.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, provision); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "アセット提供の作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityAssetProvision)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityAssetProvision)
	}
	return provision, nil
}

func (s *assetProvisionServiceImpl) GetAssetProvisions(ctx context.Context, opts ListOptions) ([]domain.AssetProvision, error) {
	if opts.Public() {
		var cached []domain.AssetProvision
		if s.cache.Get(ctx, entityAssetProvision, &cached) {
			return cached, nil
		}
	}

	provisions, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "アセット提供一覧の取得に失敗しました", err.Error())
	}
	if !opts.IncludePast {
		provisions = area.FilterUpcoming(provisions, func(p domain.AssetProvision) *time.Time { return p.Deadline }, s.now())
	}
	area.Sort(provisions, assetProvisionSortKey)

	if opts.Public() {
		s.cache.Set(ctx, entityAssetProvision, provisions)
	}
	return provisions, nil
}

func (s *assetProvisionServiceImpl) GetAssetProvisionsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.AssetProvision], error) {
	provisions, err := s.GetAssetProvisions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return area.GroupByArea(provisions, func(p domain.AssetProvision) string { return p.Area }), nil
}

func (s *assetProvisionServiceImpl) GetAssetProvisionByID(ctx context.Context, id uuid.UUID) (*domain.AssetProvision, error) {
	provision, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("アセット提供が見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "アセット提供の取得に失敗しました", err.Error())
	}
	return provision, nil
}

func (s *assetProvisionServiceImpl) ReplaceAssetProvision(ctx context.Context, id uuid.UUID, req *dto.CreateAssetProvisionRequest) (*domain.AssetProvision, error) {
	provision, err := s.GetAssetProvisionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	provision.Title = req.Title
	provision.Description = req.Description
	provision.Organizer = req.Organizer
	provision.Area = req.Area
	provision.AssetType = req.AssetType
	provision.Deadline = req.Deadline
	provision.Website = req.Website
	provision.IsActive = true
	if req.IsActive != nil {
		provision.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, provision); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "アセット提供の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityAssetProvision)
	return provision, nil
}

func (s *assetProvisionServiceImpl) PatchAssetProvision(ctx context.Context, id uuid.UUID, req *dto.PatchAssetProvisionRequest) (*domain.AssetProvision, error) {
	provision, err := s.GetAssetProvisionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		provision.Title = *req.Title
	}
	if req.Description != nil {
		provision.Description = *req.Description
	}
	if req.Organizer != nil {
		provision.Organizer = *req.Organizer
	}
	if req.Area != nil {
		provision.Area = *req.Area
	}
	if req.AssetType != nil {
		provision.AssetType = *req.AssetType
	}
	if req.Deadline != nil {
		provision.Deadline = req.Deadline
	}
	if req.Website != nil {
		provision.Website = *req.Website
	}
	if req.IsActive != nil {
		provision.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, provision); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "アセット提供の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityAssetProvision)
	return provision, nil
}

func (s *assetProvisionServiceImpl) DeleteAssetProvision(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("アセット提供が見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "アセット提供の削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityAssetProvision)
	return nil
}
