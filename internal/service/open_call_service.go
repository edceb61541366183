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

const entityOpenCall = "open_call"

// OpenCallService defines the interface for open-call business logic
type OpenCallService interface {
	CreateOpenCall(ctx context.Context, req *dto.CreateOpenCallRequest) (*domain.OpenCall, error)
	GetOpenCalls(ctx context.Context, opts ListOptions) ([]domain.OpenCall, error)
	GetOpenCallsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.OpenCall], error)
	GetOpenCallByID(ctx context.Context, id uuid.UUID) (*domain.OpenCall, error)
	ReplaceOpenCall(ctx context.Context, id uuid.UUID, req *dto.CreateOpenCallRequest) (*domain.OpenCall, error)
	PatchOpenCall(ctx context.Context, id uuid.UUID, req *dto.PatchOpenCallRequest) (*domain.OpenCall, error)
	DeleteOpenCall(ctx context.Context, id uuid.UUID) error
}

// openCallServiceImpl is the implementation of OpenCallService
type openCallServiceImpl struct {
	repo    repository.OpenCallRepository
	cache   *ListingCache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewOpenCallService creates a new instance of OpenCallService
func NewOpenCallService(repo repository.OpenCallRepository, cache *ListingCache, m *metrics.Metrics) OpenCallService {
	return &openCallServiceImpl{repo: repo, cache: cache, metrics: m, now: time.Now}
}

func openCallSortKey(o domain.OpenCall) area.SortKey {
	return area.SortKey{Area: o.Area, Deadline: o.Deadline, CreatedAt: o.CreatedAt}
}

func (s *openCallServiceImpl) CreateOpenCall(ctx context.Context, req *dto.CreateOpenCallRequest) (*domain.OpenCall, error) {
	openCall := &domain.OpenCall{
		Title:         req.Title,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Organizer:     req.Organizer,
		OrganizerType: domain.OrganizerType(req.OrganizerType),
		Area:          req.Area,
		Deadline:      req.Deadline,
		Website:       req.Website,
		Contact:       req.Contact,
		Tags:          tagsToJSON(req.Tags),
		IsActive:      true,
	}
	if req.IsActive != nil {
		openCall.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, openCall); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "公募の作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityOpenCall)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityOpenCall)
	}
	return openCall, nil
}

func (s *openCallServiceImpl) GetOpenCalls(ctx context.Context, opts ListOptions) ([]domain.OpenCall, error) {
	if opts.Public() {
		var cached []domain.OpenCall
		if s.cache.Get(ctx, entityOpenCall, &cached) {
			return cached, nil
		}
	}

	openCalls, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "公募一覧の取得に失敗しました", err.Error())
	}
	if !opts.IncludePast {
		openCalls = area.FilterUpcoming(openCalls, func(o domain.OpenCall) *time.Time { return o.Deadline }, s.now())
	}
	area.Sort(openCalls, openCallSortKey)

	if opts.Public() {
		s.cache.Set(ctx, entityOpenCall, openCalls)
	}
	return openCalls, nil
}

func (s *openCallServiceImpl) GetOpenCallsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.OpenCall], error) {
	openCalls, err := s.GetOpenCalls(ctx, opts)
	if err != nil {
		return nil, err
	}
	return area.GroupByArea(openCalls, func(o domain.OpenCall) string { return o.Area }), nil
}

func (s *openCallServiceImpl) GetOpenCallByID(ctx context.Context, id uuid.UUID) (*domain.OpenCall, error) {
	openCall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("公募が見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "公募の取得に失敗しました", err.Error())
	}
	return openCall, nil
}

func (s *openCallServiceImpl) ReplaceOpenCall(ctx context.Context, id uuid.UUID, req *dto.CreateOpenCallRequest) (*domain.OpenCall, error) {
	openCall, err := s.GetOpenCallByID(ctx, id)
	if err != nil {
		return nil, err
	}

	openCall.Title = req.Title
	openCall.Description = req.Description
	openCall.ImageURL = req.ImageURL
	openCall.Organizer = req.Organizer
	openCall.OrganizerType = domain.OrganizerType(req.OrganizerType)
	openCall.Area = req.Area
	openCall.Deadline = req.Deadline
	openCall.Website = req.Website
	openCall.Contact = req.Contact
	openCall.Tags = tagsToJSON(req.Tags)
	openCall.IsActive = true
	if req.IsActive != nil {
		openCall.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, openCall); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "公募の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityOpenCall)
	return openCall, nil
}

func (s *openCallServiceImpl) PatchOpenCall(ctx context.Context, id uuid.UUID, req *dto.PatchOpenCallRequest) (*domain.OpenCall, error) {
	openCall, err := s.GetOpenCallByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		openCall.Title = *req.Title
	}
	if req.Description != nil {
		openCall.Description = *req.Description
	}
	if req.ImageURL != nil {
		openCall.ImageURL = *req.ImageURL
	}
	if req.Organizer != nil {
		openCall.Organizer = *req.Organizer
	}
	if req.OrganizerType != nil {
		openCall.OrganizerType = domain.OrganizerType(*req.OrganizerType)
	}
	if req.Area != nil {
		openCall.Area = *req.Area
	}
	if req.Deadline != nil {
		openCall.Deadline = req.Deadline
	}
	if req.Website != nil {
		openCall.Website = *req.Website
	}
	if req.Contact != nil {
		openCall.Contact = *req.Contact
	}
	if req.Tags != nil {
		openCall.Tags = tagsToJSON(req.Tags)
	}
	if req.IsActive != nil {
		openCall.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, openCall); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "公募の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityOpenCall)
	return openCall, nil
}

func (s *openCallServiceImpl) DeleteOpenCall(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("公募が見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "公募の削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityOpenCall)
	return nil
}
