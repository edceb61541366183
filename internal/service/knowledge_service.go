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

const entityKnowledge = "knowledge"

// KnowledgeService defines the interface for knowledge article business logic.
// Articles have no area, so there is no grouped variant; the repository
// already returns them newest published first.
type KnowledgeService interface {
	CreateKnowledge(ctx context.Context, req *dto.CreateKnowledgeRequest) (*domain.Knowledge, error)
	GetKnowledge(ctx context.Context, opts ListOptions) ([]domain.Knowledge, error)
	GetKnowledgeByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error)
	ReplaceKnowledge(ctx context.Context, id uuid.UUID, req *dto.CreateKnowledgeRequest) (*domain.Knowledge, error)
	PatchKnowledge(ctx context.Context, id uuid.UUID, req *dto.PatchKnowledgeRequest) (*domain.Knowledge, error)
	DeleteKnowledge(ctx context.Context, id uuid.UUID) error
}

// knowledgeServiceImpl is the implementation of KnowledgeService
type knowledgeServiceImpl struct {
	repo    repository.KnowledgeRepository
	cache   *ListingCache
	metrics *metrics.Metrics
}

// NewKnowledgeService creates a new instance of KnowledgeService
func NewKnowledgeService(repo repository.KnowledgeRepository, cache *ListingCache, m *metrics.Metrics) KnowledgeService {
	return &knowledgeServiceImpl{repo: repo, cache: cache, metrics: m}
}

func (s *knowledgeServiceImpl) CreateKnowledge(ctx context.Context, req *dto.CreateKnowledgeRequest) (*domain.Knowledge, error) {
	article := &domain.Knowledge{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Tags:        tagsToJSON(req.Tags),
		PublishedAt: req.PublishedAt,
		IsActive:    true,
	}
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ナレッジ記事の作成に失敗しました", err.Error())
	}

	s.cache.Invalidate(ctx, entityKnowledge)
	if s.metrics != nil {
		s.metrics.IncrementEntryCreated(entityKnowledge)
	}
	return article, nil
}

func (s *knowledgeServiceImpl) GetKnowledge(ctx context.Context, opts ListOptions) ([]domain.Knowledge, error) {
	if opts.Public() {
		var cached []domain.Knowledge
		if s.cache.Get(ctx, entityKnowledge, &cached) {
			return cached, nil
		}
	}

	articles, err := s.repo.FindAll(ctx, opts.IncludeInactive)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ナレッジ記事一覧の取得に失敗しました", err.Error())
	}

	if opts.Public() {
		s.cache.Set(ctx, entityKnowledge, articles)
	}
	return articles, nil
}

func (s *knowledgeServiceImpl) GetKnowledgeByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("ナレッジ記事が見つかりません", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "ナレッジ記事の取得に失敗しました", err.Error())
	}
	return article, nil
}

func (s *knowledgeServiceImpl) ReplaceKnowledge(ctx context.Context, id uuid.UUID, req *dto.CreateKnowledgeRequest) (*domain.Knowledge, error) {
	article, err := s.GetKnowledgeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Category = req.Category
	article.ImageURL = req.ImageURL
	article.Tags = tagsToJSON(req.Tags)
	article.PublishedAt = req.PublishedAt
	article.IsActive = true
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ナレッジ記事の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityKnowledge)
	return article, nil
}

func (s *knowledgeServiceImpl) PatchKnowledge(ctx context.Context, id uuid.UUID, req *dto.PatchKnowledgeRequest) (*domain.Knowledge, error) {
	article, err := s.GetKnowledgeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.ImageURL != nil {
		article.ImageURL = *req.ImageURL
	}
	if req.Tags != nil {
		article.Tags = tagsToJSON(req.Tags)
	}
	if req.PublishedAt != nil {
		article.PublishedAt = req.PublishedAt
	}
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "ナレッジ記事の更新に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityKnowledge)
	return article, nil
}

func (s *knowledgeServiceImpl) DeleteKnowledge(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("ナレッジ記事が見つかりません", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "ナレッジ記事の削除に失敗しました", err.Error())
	}
	s.cache.Invalidate(ctx, entityKnowledge)
	return nil
}
