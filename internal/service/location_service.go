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

const entityLocation = "location"

// LocationService defines the interface for location business logic
type LocationService interface {
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*domain.Location, error)
	GetLocations(ctx context.Context) ([]domain.Location, error)
	GetLocationsGrouped(ctx context.Context) ([]dto.LocationGroup, error)
	GetLocationByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	ReplaceLocation(ctx context.Context, id uuid.UUID, req *dto.CreateLocationRequest) (*domain.Location, error)
	PatchLocation(ctx context.Context, id uuid.UUID, req *dto.PatchLocationRequest) (*domain.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}

// locationServiceImpl is the implementation of LocationService
type locationServiceImpl struct {
	repo    repository.LocationRepository
	cache   *ListingCache
	metrics *metrics.Metrics
}

// NewLocationService creates a new instance of LocationService
func NewLocationService(repo repository.LocationRepository, cache *ListingCache, m *metrics.Metrics) LocationService {
	return &locationServiceImpl{repo: repo, cache: cache, metrics: m}
}

func locationKey(l domain.Location) area.LocationKey {
	return area.LocationKey{City: l.City, Country: l.Country}
}

func (s *locationServiceImpl) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*domain.Location, error) {
	location := &domain.Location{
		City:    req.City,
		Country: req.Country,
	}
	if location.Country == "" {
		location.Country = domain.CountryJapan
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ロケーションの作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityLocation)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityLocation)
	}
	return location, nil
}

// GetLocations returns locations sorted domestic first, regions north to
// south, then foreign countries alphabetically
func (s *locationServiceImpl) GetLocations(ctx context.Context) ([]domain.Location, error) {
	var cached []domain.Location
	if s.cache.Get(ctx, entityLocation, &cached) {
		return cached, nil
	}

	locations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ロケーション一覧の取得に失敗しました", err.Error())
	}
	area.SortLocations(locations, locationKey, domain.CountryJapan)

	s.cache.Set(ctx, entityLocation, locations)
	return locations, nil
}

// GetLocationsGrouped partitions locations into sections: one per Japanese
// region holding that region's prefectures, then one per foreign country.
// Workspaces come preloaded so the browse page renders in a single call.
func (s *locationServiceImpl) GetLocationsGrouped(ctx context.Context) ([]dto.LocationGroup, error) {
	locations, err := s.repo.FindAllWithWorkspaces(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ロケーション一覧の取得に失敗しました", err.Error())
	}
	area.SortLocations(locations, locationKey, domain.CountryJapan)

	var groups []dto.LocationGroup
	labelIndex := make(map[string]int)
	for _, loc := range locations {
		label := loc.Country
		domestic := loc.IsDomestic()
		if domestic {
			region, ok := area.RegionOf(loc.City)
			if !ok {
				label = area.Other
			} else {
				label = string(region)
			}
		}
		idx, ok := labelIndex[label]
		if !ok {
			groups = append(groups, dto.LocationGroup{Label: label, Domestic: domestic})
			idx = len(groups) - 1
			labelIndex[label] = idx
		}
		groups[idx].Locations = append(groups[idx].Locations, loc)
	}
	return groups, nil
}

func (s *locationServiceImpl) GetLocationByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	location, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("ロケーションが見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "ロケーションの取得に失敗しました", err.Error())
	}
	return location, nil
}

func (s *locationServiceImpl) ReplaceLocation(ctx context.Context, id uuid.UUID, req *dto.CreateLocationRequest) (*domain.Location, error) {
	location, err := s.GetLocationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	location.City = req.City
	location.Country = req.Country
	if location.Country == "" {
		location.Country = domain.CountryJapan
	}
	location.Workspaces = nil

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ロケーションの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityLocation)
	return location, nil
}

func (s *locationServiceImpl) PatchLocation(ctx context.Context, id uuid.UUID, req *dto.PatchLocationRequest) (*domain.Location, error) {
	location, err := s.GetLocationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.City != nil {
		location.City = *req.City
	}
	if req.Country != nil {
		location.Country = *req.Country
	}
	location.Workspaces = nil

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ロケーションの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityLocation)
	return location, nil
}

func (s *locationServiceImpl) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("ロケーションが見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "ロケーションの削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityLocation)
	return nil
}
