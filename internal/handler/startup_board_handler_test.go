package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-hub-api/internal/area"
	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// MockStartupBoardService is a mock implementation of StartupBoardService
type MockStartupBoardService struct {
	CreateStartupBoardFunc      func(ctx context.Context, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error)
	GetStartupBoardsFunc        func(ctx context.Context, opts service.ListOptions) ([]domain.StartupBoard, error)
	GetStartupBoardsGroupedFunc func(ctx context.Context, opts service.ListOptions) ([]area.Group[domain.StartupBoard], error)
	GetStartupBoardByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error)
	ReplaceStartupBoardFunc     func(ctx context.Context, id uuid.UUID, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error)
	PatchStartupBoardFunc       func(ctx context.Context, id uuid.UUID, req *dto.PatchStartupBoardRequest) (*domain.StartupBoard, error)
	DeleteStartupBoardFunc      func(ctx context.Context, id uuid.UUID) error
	ToggleLikeFunc              func(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error)
	GetLikeStatusFunc           func(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error)
}

func (m *MockStartupBoardService) CreateStartupBoard(ctx context.Context, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error) {
	if m.CreateStartupBoardFunc != nil {
		return m.CreateStartupBoardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockStartupBoardService) GetStartupBoards(ctx context.Context, opts service.ListOptions) ([]domain.StartupBoard, error) {
	if m.GetStartupBoardsFunc != nil {
		return m.GetStartupBoardsFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockStartupBoardService) GetStartupBoardsGrouped(ctx context.Context, opts service.ListOptions) ([]area.Group[domain.StartupBoard], error) {
	if m.GetStartupBoardsGroupedFunc != nil {
		return m.GetStartupBoardsGroupedFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockStartupBoardService) GetStartupBoardByID(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error) {
	if m.GetStartupBoardByIDFunc != nil {
		return m.GetStartupBoardByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStartupBoardService) ReplaceStartupBoard(ctx context.Context, id uuid.UUID, req *dto.CreateStartupBoardRequest) (*domain.StartupBoard, error) {
	if m.ReplaceStartupBoardFunc != nil {
		return m.ReplaceStartupBoardFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockStartupBoardService) PatchStartupBoard(ctx context.Context, id uuid.UUID, req *dto.PatchStartupBoardRequest) (*domain.StartupBoard, error) {
	if m.PatchStartupBoardFunc != nil {
		return m.PatchStartupBoardFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockStartupBoardService) DeleteStartupBoard(ctx context.Context, id uuid.UUID) error {
	if m.DeleteStartupBoardFunc != nil {
		return m.DeleteStartupBoardFunc(ctx, id)
	}
	return nil
}

func (m *MockStartupBoardService) ToggleLike(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
	if m.ToggleLikeFunc != nil {
		return m.ToggleLikeFunc(ctx, boardID, clientID)
	}
	return nil, nil
}

func (m *MockStartupBoardService) GetLikeStatus(ctx context.Context, boardID uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
	if m.GetLikeStatusFunc != nil {
		return m.GetLikeStatusFunc(ctx, boardID, clientID)
	}
	return nil, nil
}

func TestStartupBoardHandler_ToggleLike(t *testing.T) {
	boardID := uuid.New()

	tests := []struct {
		name           string
		boardID        string
		clientID       string
		mockService    func(*MockStartupBoardService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:     "成功: いいね登録",
			boardID:  boardID.String(),
			clientID: "client-abc",
			mockService: func(m *MockStartupBoardService) {
				m.ToggleLikeFunc = func(ctx context.Context, id uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
					assert.Equal(t, "client-abc", clientID)
					return &dto.LikeStatusResponse{IsLiked: true, LikeCount: 1}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.LikeStatusResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.IsLiked)
				assert.Equal(t, int64(1), resp.LikeCount)
			},
		},
		{
			name:           "失敗: x-client-id ヘッダーなしは 400",
			boardID:        boardID.String(),
			clientID:       "",
			mockService:    func(m *MockStartupBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "失敗: 100文字超の x-client-id は 400",
			boardID:        boardID.String(),
			clientID:       strings.Repeat("a", 101),
			mockService:    func(m *MockStartupBoardService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "失敗: 存在しないボードは 404",
			boardID:  boardID.String(),
			clientID: "client-abc",
			mockService: func(m *MockStartupBoardService) {
				m.ToggleLikeFunc = func(ctx context.Context, id uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
					return nil, response.NewNotFoundError("スタートアップボードが見つかりません", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockStartupBoardService{}
			tt.mockService(mockService)
			handler := NewStartupBoardHandler(mockService)

			router := setupTestRouter()
			router.POST("/api/startup-boards/:id/like", handler.ToggleLike)

			req := httptest.NewRequest(http.MethodPost, "/api/startup-boards/"+tt.boardID+"/like", nil)
			if tt.clientID != "" {
				req.Header.Set(HeaderClientID, tt.clientID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestStartupBoardHandler_GetLikeStatus(t *testing.T) {
	boardID := uuid.New()

	t.Run("成功: いいね状態の参照", func(t *testing.T) {
		mockService := &MockStartupBoardService{
			GetLikeStatusFunc: func(ctx context.Context, id uuid.UUID, clientID string) (*dto.LikeStatusResponse, error) {
				return &dto.LikeStatusResponse{IsLiked: false, LikeCount: 3}, nil
			},
		}
		handler := NewStartupBoardHandler(mockService)

		router := setupTestRouter()
		router.GET("/api/startup-boards/:id/like", handler.GetLikeStatus)

		req := httptest.NewRequest(http.MethodGet, "/api/startup-boards/"+boardID.String()+"/like", nil)
		req.Header.Set(HeaderClientID, "client-abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.LikeStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.IsLiked)
		assert.Equal(t, int64(3), resp.LikeCount)
	})

	t.Run("失敗: ヘッダーなしは 400", func(t *testing.T) {
		handler := NewStartupBoardHandler(&MockStartupBoardService{})

		router := setupTestRouter()
		router.GET("/api/startup-boards/:id/like", handler.GetLikeStatus)

		req := httptest.NewRequest(http.MethodGet, "/api/startup-boards/"+boardID.String()+"/like", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
