package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
)

// rankingFixture wires a like repo and workspace repo from a plain
// per-workspace like count table. Like timestamps follow slice order so
// the first workspace in the slice got its first like first.
type rankingWorkspace struct {
	name     string
	likes    int
	inactive bool
}

func rankingFixture(rows []rankingWorkspace) (*MockWorkspaceRepository, *MockWorkspaceLikeRepository, []uuid.UUID) {
	ids := make([]uuid.UUID, len(rows))
	workspaces := make([]domain.Workspace, len(rows))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var likes []domain.WorkspaceLike
	for i, row := range rows {
		ids[i] = uuid.New()
		workspaces[i] = domain.Workspace{
			BaseModel: domain.BaseModel{ID: ids[i]},
			Name:      row.name,
			City:      "東京都",
			IsActive:  !row.inactive,
		}
		for n := 0; n < row.likes; n++ {
			likes = append(likes, domain.WorkspaceLike{
				BaseModel: domain.BaseModel{
					ID:        uuid.New(),
					CreatedAt: base.Add(time.Duration(len(likes)) * time.Minute),
				},
				WorkspaceID: ids[i],
				ClientID:    fmt.Sprintf("client-%d", len(likes)),
			})
		}
	}

	wsRepo := &MockWorkspaceRepository{
		FindByIDsFunc: func(ctx context.Context, want []uuid.UUID) ([]domain.Workspace, error) {
			var found []domain.Workspace
			for _, id := range want {
				for _, w := range workspaces {
					if w.ID == id {
						found = append(found, w)
					}
				}
			}
			return found, nil
		},
	}
	likeRepo := &MockWorkspaceLikeRepository{
		FindAllOrderedFunc: func(ctx context.Context) ([]domain.WorkspaceLike, error) {
			return likes, nil
		},
	}
	return wsRepo, likeRepo, ids
}

func TestWorkspaceService_GetRanking(t *testing.T) {
	t.Run("成功: いいね数の降順で返す", func(t *testing.T) {
		wsRepo, likeRepo, _ := rankingFixture([]rankingWorkspace{
			{name: "少ない", likes: 1},
			{name: "多い", likes: 3},
			{name: "中間", likes: 2},
		})
		svc := NewWorkspaceService(wsRepo, likeRepo, newTestCache(), nil)

		entries, err := svc.GetRanking(context.Background())

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "多い", entries[0].Name)
		assert.Equal(t, int64(3), entries[0].LikeCount)
		assert.Equal(t, "中間", entries[1].Name)
		assert.Equal(t, "少ない", entries[2].Name)
	})

	t.Run("成功: 同数なら先にいいねが付いた方が上", func(t *testing.T) {
		wsRepo, likeRepo, ids := rankingFixture([]rankingWorkspace{
			{name: "先行", likes: 2},
			{name: "後発", likes: 2},
		})
		svc := NewWorkspaceService(wsRepo, likeRepo, newTestCache(), nil)

		entries, err := svc.GetRanking(context.Background())

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, ids[0], entries[0].WorkspaceID)
		assert.Equal(t, "先行", entries[0].Name)
	})

	t.Run("成功: 非公開のワークスペースは除外", func(t *testing.T) {
		wsRepo, likeRepo, _ := rankingFixture([]rankingWorkspace{
			{name: "非公開", likes: 5, inactive: true},
			{name: "公開", likes: 1},
		})
		svc := NewWorkspaceService(wsRepo, likeRepo, newTestCache(), nil)

		entries, err := svc.GetRanking(context.Background())

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "公開", entries[0].Name)
	})

	t.Run("成功: 上位10件で打ち切り", func(t *testing.T) {
		rows := make([]rankingWorkspace, 12)
		for i := range rows {
			rows[i] = rankingWorkspace{name: fmt.Sprintf("ws-%d", i), likes: 12 - i}
		}
		wsRepo, likeRepo, _ := rankingFixture(rows)
		svc := NewWorkspaceService(wsRepo, likeRepo, newTestCache(), nil)

		entries, err := svc.GetRanking(context.Background())

		require.NoError(t, err)
		assert.Len(t, entries, rankingSize)
		assert.Equal(t, "ws-0", entries[0].Name)
	})

	t.Run("成功: いいねゼロなら空のランキング", func(t *testing.T) {
		wsRepo, likeRepo, _ := rankingFixture(nil)
		svc := NewWorkspaceService(wsRepo, likeRepo, newTestCache(), nil)

		entries, err := svc.GetRanking(context.Background())

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestWorkspaceService_CreateWorkspace(t *testing.T) {
	t.Run("成功: 国の省略時は日本", func(t *testing.T) {
		var created *domain.Workspace
		wsRepo := &MockWorkspaceRepository{
			CreateFunc: func(ctx context.Context, workspace *domain.Workspace) error {
				created = workspace
				return nil
			},
		}
		svc := NewWorkspaceService(wsRepo, &MockWorkspaceLikeRepository{}, newTestCache(), nil)

		_, err := svc.CreateWorkspace(context.Background(), &dto.CreateWorkspaceRequest{
			Name: "渋谷コワーキング",
			City: "東京都",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, domain.CountryJapan, created.Country)
		assert.True(t, created.IsActive)
	})
}
