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

const entityContest = "contest"

// ContestService defines the interface for contest business logic
type ContestService interface {
	CreateContest(ctx context.Context, req *dto.CreateContestRequest) (*domain.Contest, error)
	GetContests(ctx context.Context, opts ListOptions) ([]domain.Contest, error)
	GetContestsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Contest], error)
	GetContestByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error)
	ReplaceContest(ctx context.Context, id uuid.UUID, req *dto.CreateContestRequest) (*domain.Contest, error)
	PatchContest(ctx context.Context, id uuid.UUID, req *dto.PatchContestRequest) (*domain.Contest, error)
	DeleteContest(ctx context.Context, id uuid.UUID) error
}

// contestServiceImpl is the implementation of ContestService
type contestServiceImpl struct {
	repo    repository.ContestRepository
	cache   *ListingCache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewContestService creates a new instance of ContestService
func NewContestService(repo repository.ContestRepository, cache *ListingCache, m *metrics.Metrics) ContestService {
	return &contestServiceImpl{repo: repo, cache: cache, metrics: m, now: time.Now}
}

func contestSortKey(c domain.Contest) area.SortKey {
	return area.SortKey{Area: c.Area, Deadline: c.Deadline, CreatedAt: c.CreatedAt}
}

// CreateContest creates a new contest listing
func (s *contestServiceImpl) CreateContest(ctx context.Context, req *dto.CreateContestRequest) (*domain.Contest, error) {
	contest := &domain.Contest{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Organizer:     req.Organizer,
		OrganizerType: domain.OrganizerType(req.OrganizerType),
		Category:      domain.ContestCategory(req.Category),
		Area:          req.Area,
		Venue:         req.Venue,
		Deadline:      req.Deadline,
		StartDate:     req.StartDate,
		Website:       req.Website,
		Contact:       req.Contact,
		Amount:        req.Amount,
		Tags:          tagsToJSON(req.Tags),
		IsActive:      true,
	}
	if req.IsActive != nil {
		contest.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, contest); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "コンテストの作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityContest)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityContest)
	}
	return contest, nil
}

// GetContests returns contests in listing order: area rank, then deadline
// (no deadline last), then newest first
func (s *contestServiceImpl) GetContests(ctx context.Context, opts ListOptions) ([]domain.Contest, error) {
	if opts.Public() {
		var cached []domain.Contest
		if s.cache.Get(ctx, entityContest, &cached) {
			return cached, nil
		}
	}

	contests, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "コンテスト一覧の取得に失敗しました", err.Error())
	}
	if !opts.IncludePast {
		contests = area.FilterUpcoming(contests, func(c domain.Contest) *time.Time { return c.Deadline }, s.now())
	}
	area.Sort(contests, contestSortKey)

	if opts.Public() {
		s.cache.Set(ctx, entityContest, contests)
	}
	return contests, nil
}

// GetContestsGrouped returns contests partitioned into area sections
func (s *contestServiceImpl) GetContestsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Contest], error) {
	contests, err := s.GetContests(ctx, opts)
	if err != nil {
		return nil, err
	}
	return area.GroupByArea(contests, func(c domain.Contest) string { return c.Area }), nil
}

// GetContestByID returns one contest
func (s *contestServiceImpl) GetContestByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
	contest, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("コンテストが見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "コンテストの取得に失敗しました", err.Error())
	}
	return contest, nil
}

// ReplaceContest overwrites every mutable field of a contest (PUT semantics)
func (s *contestServiceImpl) ReplaceContest(ctx context.Context, id uuid.UUID, req *dto.CreateContestRequest) (*domain.Contest, error) {
	contest, err := s.GetContestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contest.Title = req.Title
	contest.Description = req.Description
	contest.ImageURL = req.ImageURL
	contest.Organizer = req.Organizer
	contest.OrganizerType = domain.OrganizerType(req.OrganizerType)
	contest.Category = domain.ContestCategory(req.Category)
	contest.Area = req.Area
	contest.Venue = req.Venue
	contest.Deadline = req.Deadline
	contest.StartDate = req.StartDate
	contest.Website = req.Website
	contest.Contact = req.Contact
	contest.Amount = req.Amount
	contest.Tags = tagsToJSON(req.Tags)
	contest.IsActive = true
	if req.IsActive != nil {
		contest.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, contest); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "コンテストの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityContest)
	return contest, nil
}

// PatchContest applies only the fields present in the request; the common
// case is the isActive toggle
func (s *contestServiceImpl) PatchContest(ctx context.Context, id uuid.UUID, req *dto.PatchContestRequest) (*domain.Contest, error) {
	contest, err := s.GetContestByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		contest.Title = *req.Title
	}
	if req.Description != nil {
		contest.Description = *req.Description
	}
	if req.ImageURL != nil {
		contest.ImageURL = *req.ImageURL
	}
	if req.Organizer != nil {
		contest.Organizer = *req.Organizer
	}
	if req.OrganizerType != nil {
		contest.OrganizerType = domain.OrganizerType(*req.OrganizerType)
	}
	if req.Category != nil {
		contest.Category = domain.ContestCategory(*req.Category)
	}
	if req.Area != nil {
		contest.Area = *req.Area
	}
	if req.Venue != nil {
		contest.Venue = *req.Venue
	}
	if req.Deadline != nil {
		contest.Deadline = req.Deadline
	}
	if req.StartDate != nil {
		contest.StartDate = req.StartDate
	}
	if req.Website != nil {
		contest.Website = *req.Website
	}
	if req.Contact != nil {
		contest.Contact = *req.Contact
	}
	if req.Amount != nil {
		contest.Amount = *req.Amount
	}
	if req.Tags != nil {
		contest.Tags = tagsToJSON(req.Tags)
	}
	if req.IsActive != nil {
		contest.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, contest); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "コンテストの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityContest)
	return contest, nil
}

// DeleteContest removes a contest permanently
func (s *contestServiceImpl) DeleteContest(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("コンテストが見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "コンテストの削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityContest)
	return nil
}
