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

const entityFacility = "facility"

// FacilityService defines the interface for support facility business logic
type FacilityService interface {
	CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*domain.Facility, error)
	GetFacilities(ctx context.Context, opts ListOptions) ([]domain.Facility, error)
	GetFacilitiesGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Facility], error)
	GetFacilityByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error)
	ReplaceFacility(ctx context.Context, id uuid.UUID, req *dto.CreateFacilityRequest) (*domain.Facility, error)
	PatchFacility(ctx context.Context, id uuid.UUID, req *dto.PatchFacilityRequest) (*domain.Facility, error)
	DeleteFacility(ctx context.Context, id uuid.UUID) error
}

// facilityServiceImpl is the implementation of FacilityService
type facilityServiceImpl struct {
	repo    repository.FacilityRepository
	cache   *ListingCache
	metrics *metrics.Metrics
}

// NewFacilityService creates a new instance of FacilityService
func NewFacilityService(repo repository.FacilityRepository, cache *ListingCache, m *metrics.Metrics) FacilityService {
	return &facilityServiceImpl{repo: repo, cache: cache, metrics: m}
}

// facilitySortKey has no deadline; facilities order by area then recency
func facilitySortKey(f domain.Facility) area.SortKey {
	return area.SortKey{Area: f.Area, CreatedAt: f.CreatedAt}
}

func (s *facilityServiceImpl) CreateFacility(ctx context.Context, req *dto.CreateFacilityRequest) (*domain.Facility, error) {
	facility := &domain.Facility{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Area:        req.Area,
		Address:     req.Address,
		Website:     req.Website,
		Tags:        tagsToJSON(req.Tags),
		IsActive:    true,
	}
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, facility); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "支援施設の作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityFacility)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityFacility)
	}
	return facility, nil
}

func (s *facilityServiceImpl) GetFacilities(ctx context.Context, opts ListOptions) ([]domain.Facility, error) {
	if opts.Public() {
		var cached []domain.Facility
		if s.cache.Get(ctx, entityFacility, &cached) {
			return cached, nil
		}
	}

	facilities, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "支援施設一覧の取得に失敗しました", err.Error())
	}
	area.Sort(facilities, facilitySortKey)

	if opts.Public() {
		s.cache.Set(ctx, entityFacility, facilities)
	}
	return facilities, nil
}

func (s *facilityServiceImpl) GetFacilitiesGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Facility], error) {
	facilities, err := s.GetFacilities(ctx, opts)
	if err != nil {
		return nil, err
	}
	return area.GroupByArea(facilities, func(f domain.Facility) string { return f.Area }), nil
}

func (s *facilityServiceImpl) GetFacilityByID(ctx context.Context, id uuid.UUID) (*domain.Facility, error) {
	facility, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("支援施設が見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "支援施設の取得に失敗しました", err.Error())
	}
	return facility, nil
}

func (s *facilityServiceImpl) ReplaceFacility(ctx context.Context, id uuid.UUID, req *dto.CreateFacilityRequest) (*domain.Facility, error) {
	facility, err := s.GetFacilityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	facility.Name = req.Name
	facility.Description = req.Description
	facility.ImageURL = req.ImageURL
	facility.Area = req.Area
	facility.Address = req.Address
	facility.Website = req.Website
	facility.Tags = tagsToJSON(req.Tags)
	facility.IsActive = true
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, facility); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "支援施設の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityFacility)
	return facility, nil
}

func (s *facilityServiceImpl) PatchFacility(ctx context.Context, id uuid.UUID, req *dto.PatchFacilityRequest) (*domain.Facility, error) {
	facility, err := s.GetFacilityByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.Description != nil {
		facility.Description = *req.Description
	}
	if req.ImageURL != nil {
		facility.ImageURL = *req.ImageURL
	}
	if req.Area != nil {
		facility.Area = *req.Area
	}
	if req.Address != nil {
		facility.Address = *req.Address
	}
	if req.Website != nil {
		facility.Website = *req.Website
	}
	if req.Tags != nil {
		facility.Tags = tagsToJSON(req.Tags)
	}
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, facility); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "支援施設の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityFacility)
	return facility, nil
}

func (s *facilityServiceImpl) DeleteFacility(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("支援施設が見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "支援施設の削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityFacility)
	return nil
}
