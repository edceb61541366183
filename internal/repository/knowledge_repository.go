package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"startup-hub-api/internal/domain"
)

// KnowledgeRepository defines the interface for knowledge article data access
type KnowledgeRepository interface {
	Create(ctx context.Context, article *domain.Knowledge) error
	FindAll(ctx context.Context, includeInactive bool) ([]domain.Knowledge, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error)
	Update(ctx context.Context, article *domain.Knowledge) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// knowledgeRepositoryImpl is the GORM implementation of KnowledgeRepository
type knowledgeRepositoryImpl struct {
	db *gorm.DB
}

// NewKnowledgeRepository creates a new instance of KnowledgeRepository
func NewKnowledgeRepository(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepositoryImpl{db: db}
}

func (r *knowledgeRepositoryImpl) Create(ctx context.Context, article *domain.Knowledge) error {
	return r.db.WithContext(ctx).Create(article).Error
}

// FindAll finds knowledge articles, newest published first
func (r *knowledgeRepositoryImpl) FindAll(ctx context.Context, includeInactive bool) ([]domain.Knowledge, error) {
	var articles []domain.Knowledge
	query := r.db.WithContext(ctx)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("published_at DESC NULLS LAST, created_at DESC").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *knowledgeRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Knowledge, error) {
	var article domain.Knowledge
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *knowledgeRepositoryImpl) Update(ctx context.Context, article *domain.Knowledge) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *knowledgeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Knowledge{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *knowledgeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Knowledge{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
