package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/metrics"
	"startup-hub-api/internal/repository"
	"startup-hub-api/internal/response"
)

const entityTechnology = "technology"

// TechnologyService defines the interface for technology seed business logic.
// Seeds have no area or deadline; listing order is newest first.
type TechnologyService interface {
	CreateTechnology(ctx context.Context, req *dto.CreateTechnologyRequest) (*domain.Technology, error)
	GetTechnologies(ctx context.Context, opts ListOptions) ([]domain.Technology, error)
	GetTechnologyByID(ctx context.Context, id uuid.UUID) (*domain.Technology, error)
	ReplaceTechnology(ctx context.Context, id uuid.UUID, req *dto.CreateTechnologyRequest) (*domain.Technology, error)
	PatchTechnology(ctx context.Context, id uuid.UUID, req *dto.PatchTechnologyRequest) (*domain.Technology, error)
	DeleteTechnology(ctx context.Context, id uuid.UUID) error
}

// technologyServiceImpl is the implementation of TechnologyService
type technologyServiceImpl struct {
	repo    repository.TechnologyRepository
	cache   *ListingCache
	metrics *metrics.Metrics
}

// NewTechnologyService creates a new instance of TechnologyService
func NewTechnologyService(repo repository.TechnologyRepository, cache *ListingCache, m *metrics.Metrics) TechnologyService {
	return &technologyServiceImpl{repo: repo, cache: cache, metrics: m}
}

func (s *technologyServiceImpl) CreateTechnology(ctx context.Context, req *dto.CreateTechnologyRequest) (*domain.Technology, error) {
	technology := &domain.Technology{
		Title:       req.Title,
		Description: req.Description,
		Provider:    req.Provider,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Website:     req.Website,
		IsActive:    true,
	}
	if req.IsActive != nil {
		technology.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, technology); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "技術シーズの作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityTechnology)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityTechnology)
	}
	return technology, nil
}

func (s *technologyServiceImpl) GetTechnologies(ctx context.Context, opts ListOptions) ([]domain.Technology, error) {
	if opts.Public() {
		var cached []domain.Technology
		if s.cache.Get(ctx, entityTechnology, &cached) {
			return cached, nil
		}
	}

	technologies, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "技術シーズ一覧の取得に失敗しました", err.Error())
	}

	if opts.Public() {
		s.cache.Set(ctx, entityTechnology, technologies)
	}
	return technologies, nil
}

func (s *technologyServiceImpl) GetTechnologyByID(ctx context.Context, id uuid.UUID) (*domain.Technology, error) {
	technology, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("技術シーズが見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "技術シーズの取得に失敗しました", err.Error())
	}
	return technology, nil
}

func (s *technologyServiceImpl) ReplaceTechnology(ctx context.Context, id uuid.UUID, req *dto.CreateTechnologyRequest) (*domain.Technology, error) {
	technology, err := s.GetTechnologyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	technology.Title = req.Title
	technology.Description = req.Description
	technology.Provider = req.Provider
	technology.Category = req.Category
	technology.ImageURL = req.ImageURL
	technology.Website = req.Website
	technology.IsActive = true
	if req.IsActive != nil {
		technology.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, technology); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "技術シーズの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityTechnology)
	return technology, nil
}

func (s *technologyServiceImpl) PatchTechnology(ctx context.Context, id uuid.UUID, req *dto.PatchTechnologyRequest) (*domain.Technology, error) {
	technology, err := s.GetTechnologyByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		technology.Title = *req.Title
	}
	if req.Description != nil {
		technology.Description = *req.Description
	}
	if req.Provider != nil {
		technology.Provider = *req.Provider
	}
	if req.Category != nil {
		technology.Category = *req.Category
	}
	if req.ImageURL != nil {
		technology.ImageURL = *req.ImageURL
	}
	if req.Website != nil {
		technology.Website = *req.Website
	}
	if req.IsActive != nil {
		technology.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, technology); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "技術シーズの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityTechnology)
	return technology, nil
}

func (s *technologyServiceImpl) DeleteTechnology(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("技術シーズが見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "技術シーズの削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityTechnology)
	return nil
}
