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

const entityEvent = "event"

// EventService defines the interface for event business logic
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error)
	GetEvents(ctx context.Context, opts ListOptions) ([]domain.Event, error)
	GetEventsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Event], error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	ReplaceEvent(ctx context.Context, id uuid.UUID, req *dto.CreateEventRequest) (*domain.Event, error)
	PatchEvent(ctx context.Context, id uuid.UUID, req *dto.PatchEventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// eventServiceImpl is the implementation of EventService
type eventServiceImpl struct {
	repo    repository.EventRepository
	cache   *ListingCache
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewEventService creates a new instance of EventService
func NewEventService(repo repository.EventRepository, cache *ListingCache, m *metrics.Metrics) EventService {
	return &eventServiceImpl{repo: repo, cache: cache, metrics: m, now: time.Now}
}

// eventSortKey orders events by start date; an event with no date never
// expires and sorts after dated ones within its area
func eventSortKey(e domain.Event) area.SortKey {
	return area.SortKey{Area: e.Area, Deadline: e.StartDate, CreatedAt: e.CreatedAt}
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*domain.Event, error) {
	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Organizer:   req.Organizer,
		Area:        req.Area,
		Venue:       req.Venue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Website:     req.Website,
		Tags:        tagsToJSON(req.Tags),
		IsActive:    true,
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "イベントの作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityEvent)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityEvent)
	}
	return event, nil
}

// GetEvents returns events in listing order. The upcoming filter uses the
// end date when present so a running multi-day event stays listed.
func (s *eventServiceImpl) GetEvents(ctx context.Context, opts ListOptions) ([]domain.Event, error) {
	if opts.Public() {
		var cached []domain.Event
		if s.cache.Get(ctx, entityEvent, &cached) {
			return cached, nil
		}
	}

	events, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "イベント一覧の取得に失敗しました", err.Error())
	}
	if !opts.IncludePast {
		events = area.FilterUpcoming(events, func(e domain.Event) *time.Time {
			if e.EndDate != nil {
				return e.EndDate
			}
			return e.StartDate
		}, s.now())
	}
	area.Sort(events, eventSortKey)

	if opts.Public() {
		s.cache.Set(ctx, entityEvent, events)
	}
	return events, nil
}

func (s *eventServiceImpl) GetEventsGrouped(ctx context.Context, opts ListOptions) ([]area.Group[domain.Event], error) {
	events, err := s.GetEvents(ctx, opts)
	if err != nil {
		return nil, err
	}
	return area.GroupByArea(events, func(e domain.Event) string { return e.Area }), nil
}

func (s *eventServiceImpl) GetEventByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("イベントが見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "イベントの取得に失敗しました", err.Error())
	}
	return event, nil
}

func (s *eventServiceImpl) ReplaceEvent(ctx context.Context, id uuid.UUID, req *dto.CreateEventRequest) (*domain.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Title = req.Title
	event.Description = req.Description
	event.ImageURL = req.ImageURL
	event.Organizer = req.Organizer
	event.Area = req.Area
	event.Venue = req.Venue
	event.StartDate = req.StartDate
	event.EndDate = req.EndDate
	event.Website = req.Website
	event.Tags = tagsToJSON(req.Tags)
	event.IsActive = true
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "イベントの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityEvent)
	return event, nil
}

func (s *eventServiceImpl) PatchEvent(ctx context.Context, id uuid.UUID, req *dto.PatchEventRequest) (*domain.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.Organizer != nil {
		event.Organizer = *req.Organizer
	}
	if req.Area != nil {
		event.Area = *req.Area
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.StartDate != nil {
		event.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.Website != nil {
		event.Website = *req.Website
	}
	if req.Tags != nil {
		event.Tags = tagsToJSON(req.Tags)
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "イベントの更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityEvent)
	return event, nil
}

func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("イベントが見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "イベントの削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityEvent)
	return nil
}
