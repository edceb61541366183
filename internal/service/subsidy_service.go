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

const entitySubsidy = "subsidy"

// SubsidyService defines the interface for subsidy business logic
type SubsidyService interface {
	CreateSubsidy(ctx context.Context, req *dto.CreateSubsidyRequest) (*domain.Subsidy, error)
	GetSubsidies(ctx context.Context, opts ListOptions) ([]domain.Subsidy, error)
	GetSubsidiesGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Subsidy], error)
	GetSubsidyByID(ctx context.Context, id uuid.UUID) (*domain.Subsidy, error)
	ReplaceSubsidy(ctx context.Context, id uuid.UUID, req *dto.CreateSubsidyRequest) (*domain.Subsidy, error)
	PatchSubsidy(ctx context.Context, id uuid.UUID, req *dto.PatchSubsidyRequest) (*domain.Subsidy, error)
	DeleteSubsidy(ctx context.Context, id uuid.UUID) error
}

// subsidyServiceImpl is the implementation of SubsidyService
type subsidyServiceImpl struct {
	repo    repository.SubsidyRepository
	cache   *ListingCache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewSubsidyService creates a new instance of SubsidyService
func NewSubsidyService(repo repository.SubsidyRepository, cache *ListingCache, m *metrics.Metrics) SubsidyService {
	return &subsidyServiceImpl{repo: repo, cache: cache, metrics: m, now: time.Now}
}

func subsidySortKey(s domain.Subsidy) area.SortKey {
	return area.SortKey{Area: s.Area, Deadline: s.Deadline, CreatedAt: s.CreatedAt}
}

func (s *subsidyServiceImpl) CreateSubsidy(ctx context.Context, req *dto.CreateSubsidyRequest) (*domain.Subsidy, error) {
	subsidy := &domain.Subsidy{
		Title:       req.Title,
		Description: req.Description,
		Organizer:   req.Organizer,
		Area:        req.Area,
		Deadline:    req.Deadline,
		Amount:      req.Amount,
		Category:    req.Category,
		Website:     req.Website,
		IsActive:    true,
	}
	if req.IsActive != nil {
		subsidy.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, subsidy); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "補助金の作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entitySubsidy)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entitySubsidy)
	}
	return subsidy, nil
}

func (s *subsidyServiceImpl) GetSubsidies(ctx context.Context, opts ListOptions) ([]domain.Subsidy, error) {
	if opts.Public() {
		var cached []domain.Subsidy
		if s.cache.Get(ctx, entitySubsidy, &cached) {
			return cached, nil
		}
	}

	subsidies, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "補助金一覧の取得に失敗しました", err.Error())
	}
	if !opts.IncludePast {
		subsidies = area.FilterUpcoming(subsidies, func(s domain.Subsidy) *time.Time { return s.Deadline }, s.now())
	}
	area.Sort(subsidies, subsidySortKey)

	if opts.Public() {
		s.cache.Set(ctx, entitySubsidy, subsidies)
	}
	return subsidies, nil
}

func (s *subsidyServiceImpl) GetSubsidiesGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Subsidy], error) {
	subsidies, err := s.GetSubsidies(ctx, opts)
	if err != nil {
		return nil, err
	}
	return area.GroupByArea(subsidies, func(s domain.Subsidy) string { return s.Area }), nil
}

func (s *subsidyServiceImpl) GetSubsidyByID(ctx context.Context, id uuid.UUID) (*domain.Subsidy, error) {
	subsidy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("補助金が見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "補助金の取得に失敗しました", err.Error())
	}
	return subsidy, nil
}

func (s *subsidyServiceImpl) ReplaceSubsidy(ctx context.Context, id uuid.UUID, req *dto.CreateSubsidyRequest) (*domain.Subsidy, error) {
	subsidy, err := s.GetSubsidyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subsidy.Title = req.Title
	subsidy.Description = req.Description
	subsidy.Organizer = req.Organizer
	subsidy.Area = req.Area
	subsidy.Deadline = req.Deadline
	subsidy.Amount = req.Amount
	subsidy.Category = req.Category
	subsidy.Website = req.Website
	subsidy.IsActive = true
	if req.IsActive != nil {
		subsidy.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, subsidy); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "補助金の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entitySubsidy)
	return subsidy, nil
}

func (s *subsidyServiceImpl) PatchSubsidy(ctx context.Context, id uuid.UUID, req *dto.PatchSubsidyRequest) (*domain.Subsidy, error) {
	subsidy, err := s.GetSubsidyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		subsidy.Title = *req.Title
	}
	if req.Description != nil {
		subsidy.Description = *req.Description
	}
	if req.Organizer != nil {
		subsidy.Organizer = *req.Organizer
	}
	if req.Area != nil {
		subsidy.Area = *req.Area
	}
	if req.Deadline != nil {
		subsidy.Deadline = req.Deadline
	}
	if req.Amount != nil {
		subsidy.Amount = *req.Amount
	}
	if req.Category != nil {
		subsidy.Category = *req.Category
	}
	if req.Website != nil {
		subsidy.Website = *req.Website
	}
	if req.IsActive != nil {
		subsidy.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, subsidy); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "補助金の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entitySubsidy)
	return subsidy, nil
}

func (s *subsidyServiceImpl) DeleteSubsidy(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("補助金が見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "補助金の削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entitySubsidy)
	return nil
}
