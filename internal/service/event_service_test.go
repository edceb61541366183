package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-hub-api/internal/domain"
)

func TestEventService_GetEvents(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-72 * time.Hour)
	recent := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	t.Run("成功: 開催中の複数日イベントは終了日で判定して残す", func(t *testing.T) {
		mockRepo := &MockEventRepository{
			FindAllFunc: func(ctx context.Context, includeInactive bool) ([]domain.Event, error) {
				return []domain.Event{
					{Title: "開催中", Area: "東京都", StartDate: &recent, EndDate: &future},
					{Title: "終了済み", Area: "東京都", StartDate: &past, EndDate: &recent},
					{Title: "日付なし", Area: "東京都"},
				}, nil
			},
		}
		svc := &eventServiceImpl{
			repo:  mockRepo,
			cache: newTestCache(),
			now:   func() time.Time { return now },
		}

		events, err := svc.GetEvents(context.Background(), ListOptions{})

		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "開催中", events[0].Title)
		assert.Equal(t, "日付なし", events[1].Title)
	})

	t.Run("成功: 終了日がなければ開始日で判定", func(t *testing.T) {
		mockRepo := &MockEventRepository{
			FindAllFunc: func(ctx context.Context, includeInactive bool) ([]domain.Event, error) {
				return []domain.Event{
					{Title: "開始済み単日", Area: "東京都", StartDate: &recent},
					{Title: "これから", Area: "東京都", StartDate: &future},
				}, nil
			},
		}
		svc := &eventServiceImpl{
			repo:  mockRepo,
			cache: newTestCache(),
			now:   func() time.Time { return now },
		}

		events, err := svc.GetEvents(context.Background(), ListOptions{})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "これから", events[0].Title)
	})

	t.Run("成功: includePast なら終了済みも返す", func(t *testing.T) {
		mockRepo := &MockEventRepository{
			FindAllFunc: func(ctx context.Context, includeInactive bool) ([]domain.Event, error) {
				return []domain.Event{
					{Title: "終了済み", Area: "東京都", StartDate: &past, EndDate: &recent},
				}, nil
			},
		}
		svc := &eventServiceImpl{
			repo:  mockRepo,
			cache: newTestCache(),
			now:   func() time.Time { return now },
		}

		events, err := svc.GetEvents(context.Background(), ListOptions{IncludePast: true})

		require.NoError(t, err)
		assert.Len(t, events, 1)
	})
}
