package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
)

// MockLocationRepository is a mock implementation of LocationRepository
type MockLocationRepository struct {
	CreateFunc                func(ctx context.Context, location *domain.Location) error
	FindAllFunc               func(ctx context.Context) ([]domain.Location, error)
	FindAllWithWorkspacesFunc func(ctx context.Context) ([]domain.Location, error)
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	UpdateFunc                func(ctx context.Context, location *domain.Location) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	CountFunc                 func(ctx context.Context) (int64, error)
}

func (m *MockLocationRepository) Create(ctx context.Context, location *domain.Location) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, location)
	}
	return nil
}

func (m *MockLocationRepository) FindAll(ctx context.Context) ([]domain.Location, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockLocationRepository) FindAllWithWorkspaces(ctx context.Context) ([]domain.Location, error) {
	if m.FindAllWithWorkspacesFunc != nil {
		return m.FindAllWithWorkspacesFunc(ctx)
	}
	return nil, nil
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockLocationRepository) Update(ctx context.Context, location *domain.Location) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, location)
	}
	return nil
}

func (m *MockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockLocationRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func TestLocationService_CreateLocation(t *testing.T) {
	t.Run("成功: 国の省略時は日本", func(t *testing.T) {
		var created *domain.Location
		mockRepo := &MockLocationRepository{
			CreateFunc: func(ctx context.Context, location *domain.Location) error {
				created = location
				return nil
			},
		}
		svc := NewLocationService(mockRepo, newTestCache(), nil)

		_, err := svc.CreateLocation(context.Background(), &dto.CreateLocationRequest{City: "東京都"})

		require.NoError(t, err)
		assert.Equal(t, domain.CountryJapan, created.Country)
	})
}

func TestLocationService_GetLocations(t *testing.T) {
	t.Run("成功: 国内が先で地域順、海外は国名順", func(t *testing.T) {
		mockRepo := &MockLocationRepository{
			FindAllFunc: func(ctx context.Context) ([]domain.Location, error) {
				return []domain.Location{
					{City: "ベルリン", Country: "ドイツ"},
					{City: "福岡県", Country: domain.CountryJapan},
					{City: "北海道", Country: domain.CountryJapan},
					{City: "ニューヨーク", Country: "アメリカ"},
				}, nil
			},
		}
		svc := NewLocationService(mockRepo, newTestCache(), nil)

		locations, err := svc.GetLocations(context.Background())

		require.NoError(t, err)
		require.Len(t, locations, 4)
		assert.Equal(t, "北海道", locations[0].City)
		assert.Equal(t, "福岡県", locations[1].City)
		assert.Equal(t, "ニューヨーク", locations[2].City)
		assert.Equal(t, "ベルリン", locations[3].City)
	})
}

func TestLocationService_GetLocationsGrouped(t *testing.T) {
	t.Run("成功: 国内は地域、海外は国でセクション化", func(t *testing.T) {
		mockRepo := &MockLocationRepository{
			FindAllWithWorkspacesFunc: func(ctx context.Context) ([]domain.Location, error) {
				return []domain.Location{
					{City: "東京都", Country: domain.CountryJapan},
					{City: "神奈川県", Country: domain.CountryJapan},
					{City: "北海道", Country: domain.CountryJapan},
					{City: "サンフランシスコ", Country: "アメリカ"},
				}, nil
			},
		}
		svc := NewLocationService(mockRepo, newTestCache(), nil)

		groups, err := svc.GetLocationsGrouped(context.Background())

		require.NoError(t, err)
		require.Len(t, groups, 3)

		assert.Equal(t, "北海道", groups[0].Label)
		assert.True(t, groups[0].Domestic)
		assert.Len(t, groups[0].Locations, 1)

		assert.Equal(t, "関東", groups[1].Label)
		assert.Len(t, groups[1].Locations, 2)

		assert.Equal(t, "アメリカ", groups[2].Label)
		assert.False(t, groups[2].Domestic)
	})
}
