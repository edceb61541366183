package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-hub-api/internal/area"
	"startup-hub-api/internal/domain"
	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockContestService is a mock implementation of ContestService
type MockContestService struct {
	CreateContestFunc      func(ctx context.Context, req *dto.CreateContestRequest) (*domain.Contest, error)
	GetContestsFunc        func(ctx context.Context, opts service.ListOptions) ([]domain.Contest, error)
	GetContestsGroupedFunc func(ctx context.Context, opts service.ListOptions) ([]area.Group[domain.Contest], error)
	GetContestByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.Contest, error)
	ReplaceContestFunc     func(ctx context.Context, id uuid.UUID, req *dto.CreateContestRequest) (*domain.Contest, error)
	PatchContestFunc       func(ctx context.Context, id uuid.UUID, req *dto.PatchContestRequest) (*domain.Contest, error)
	DeleteContestFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *MockContestService) CreateContest(ctx context.Context, req *dto.CreateContestRequest) (*domain.Contest, error) {
	if m.CreateContestFunc != nil {
		return m.CreateContestFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockContestService) GetContests(ctx context.Context, opts service.ListOptions) ([]domain.Contest, error) {
	if m.GetContestsFunc != nil {
		return m.GetContestsFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockContestService) GetContestsGrouped(ctx context.Context, opts service.ListOptions) ([]area.Group[domain.Contest], error) {
	if m.GetContestsGroupedFunc != nil {
		return m.GetContestsGroupedFunc(ctx, opts)
	}
	return nil, nil
}

func (m *MockContestService) GetContestByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
	if m.GetContestByIDFunc != nil {
		return m.GetContestByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockContestService) ReplaceContest(ctx context.Context, id uuid.UUID, req *dto.CreateContestRequest) (*domain.Contest, error) {
	if m.ReplaceContestFunc != nil {
		return m.ReplaceContestFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockContestService) PatchContest(ctx context.Context, id uuid.UUID, req *dto.PatchContestRequest) (*domain.Contest, error) {
	if m.PatchContestFunc != nil {
		return m.PatchContestFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockContestService) DeleteContest(ctx context.Context, id uuid.UUID) error {
	if m.DeleteContestFunc != nil {
		return m.DeleteContestFunc(ctx, id)
	}
	return nil
}

func TestContestHandler_GetContests(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		mockService    func(*MockContestService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:  "成功: 一覧は素の配列で返す",
			query: "",
			mockService: func(m *MockContestService) {
				m.GetContestsFunc = func(ctx context.Context, opts service.ListOptions) ([]domain.Contest, error) {
					return []domain.Contest{
						{Title: "コンテストA", Area: "東京都"},
						{Title: "コンテストB", Area: "大阪府"},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var contests []domain.Contest
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &contests))
				require.Len(t, contests, 2)
				assert.Equal(t, "コンテストA", contests[0].Title)
			},
		},
		{
			name:  "成功: grouped=true でエリア別セクション",
			query: "?grouped=true",
			mockService: func(m *MockContestService) {
				m.GetContestsGroupedFunc = func(ctx context.Context, opts service.ListOptions) ([]area.Group[domain.Contest], error) {
					return []area.Group[domain.Contest]{
						{Area: "東京都", Items: []domain.Contest{{Title: "a"}}},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var groups []area.Group[domain.Contest]
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
				require.Len(t, groups, 1)
				assert.Equal(t, "東京都", groups[0].Area)
			},
		},
		{
			name:  "成功: 認証なしの includeInactive は無視される",
			query: "?includeInactive=true",
			mockService: func(m *MockContestService) {
				m.GetContestsFunc = func(ctx context.Context, opts service.ListOptions) ([]domain.Contest, error) {
					assert.False(t, opts.IncludeInactive)
					return nil, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "成功: includePast はそのまま渡る",
			query: "?includePast=true",
			mockService: func(m *MockContestService) {
				m.GetContestsFunc = func(ctx context.Context, opts service.ListOptions) ([]domain.Contest, error) {
					assert.True(t, opts.IncludePast)
					return nil, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "失敗: サービスエラーは 500",
			query: "",
			mockService: func(m *MockContestService) {
				m.GetContestsFunc = func(ctx context.Context, opts service.ListOptions) ([]domain.Contest, error) {
					return nil, response.NewAppError(response.ErrCodeInternal, "一覧の取得に失敗しました", "")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp response.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
				assert.Equal(t, response.ErrCodeInternal, resp.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockContestService{}
			tt.mockService(mockService)
			handler := NewContestHandler(mockService)

			router := setupTestRouter()
			router.GET("/api/contests", handler.GetContests)

			req := httptest.NewRequest(http.MethodGet, "/api/contests"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestContestHandler_GetContest(t *testing.T) {
	contestID := uuid.New()

	tests := []struct {
		name           string
		contestID      string
		mockService    func(*MockContestService)
		expectedStatus int
	}{
		{
			name:      "成功: コンテスト詳細",
			contestID: contestID.String(),
			mockService: func(m *MockContestService) {
				m.GetContestByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
					return &domain.Contest{BaseModel: domain.BaseModel{ID: id}, Title: "詳細"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "失敗: 不正な UUID は 400",
			contestID:      "not-a-uuid",
			mockService:    func(m *MockContestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "失敗: 存在しない ID は 404",
			contestID: contestID.String(),
			mockService: func(m *MockContestService) {
				m.GetContestByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
					return nil, response.NewNotFoundError("コンテストが見つかりません", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockContestService{}
			tt.mockService(mockService)
			handler := NewContestHandler(mockService)

			router := setupTestRouter()
			router.GET("/api/contests/:id", handler.GetContest)

			req := httptest.NewRequest(http.MethodGet, "/api/contests/"+tt.contestID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestContestHandler_CreateContest(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockContestService)
		expectedStatus int
	}{
		{
			name: "成功: コンテスト作成は 201",
			requestBody: dto.CreateContestRequest{
				Title:         "ビジコン2026",
				Organizer:     "東京都",
				OrganizerType: "MUNICIPALITY",
				Category:      "BUSINESS_PLAN",
			},
			mockService: func(m *MockContestService) {
				m.CreateContestFunc = func(ctx context.Context, req *dto.CreateContestRequest) (*domain.Contest, error) {
					return &domain.Contest{Title: req.Title}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "失敗: 不正なボディは 400",
			requestBody:    "invalid json",
			mockService:    func(m *MockContestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "失敗: 必須フィールド欠落は 400",
			requestBody: map[string]interface{}{
				"description": "タイトルなし",
			},
			mockService:    func(m *MockContestService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "失敗: 不正なカテゴリは 400",
			requestBody: map[string]interface{}{
				"title":         "x",
				"organizer":     "y",
				"organizerType": "PRIVATE",
				"category":      "INVALID_CATEGORY",
			},
			mockService:    func(m *MockContestService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockContestService{}
			tt.mockService(mockService)
			handler := NewContestHandler(mockService)

			router := setupTestRouter()
			router.POST("/api/contests", handler.CreateContest)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/contests", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestContestHandler_DeleteContest(t *testing.T) {
	contestID := uuid.New()

	tests := []struct {
		name           string
		contestID      string
		mockService    func(*MockContestService)
		expectedStatus int
	}{
		{
			name:           "成功: 削除は 200",
			contestID:      contestID.String(),
			mockService:    func(m *MockContestService) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "失敗: 存在しない ID は 404",
			contestID: contestID.String(),
			mockService: func(m *MockContestService) {
				m.DeleteContestFunc = func(ctx context.Context, id uuid.UUID) error {
					return response.NewNotFoundError("コンテストが見つかりません", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockContestService{}
			tt.mockService(mockService)
			handler := NewContestHandler(mockService)

			router := setupTestRouter()
			router.DELETE("/api/contests/:id", handler.DeleteContest)

			req := httptest.NewRequest(http.MethodDelete, "/api/contests/"+tt.contestID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
