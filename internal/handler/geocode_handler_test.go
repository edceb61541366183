package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-hub-api/internal/client"
	"startup-hub-api/internal/dto"
)

// MockGeocodeClient is a mock implementation of GeocodeClient
type MockGeocodeClient struct {
	GeocodeFunc func(ctx context.Context, address string) (*dto.GeocodeResponse, error)
}

func (m *MockGeocodeClient) Geocode(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
	if m.GeocodeFunc != nil {
		return m.GeocodeFunc(ctx, address)
	}
	return nil, nil
}

func TestGeocodeHandler_Geocode(t *testing.T) {
	tests := []struct {
		name           string
		address        string
		mockClient     func(*MockGeocodeClient)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:    "成功: 住所を座標に変換",
			address: "東京都渋谷区道玄坂1-2-3",
			mockClient: func(m *MockGeocodeClient) {
				m.GeocodeFunc = func(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
					return &dto.GeocodeResponse{Address: address, Lat: 35.658, Lng: 139.698}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.GeocodeResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.InDelta(t, 35.658, resp.Lat, 0.001)
				assert.InDelta(t, 139.698, resp.Lng, 0.001)
			},
		},
		{
			name:           "失敗: address パラメータなしは 400",
			address:        "",
			mockClient:     func(m *MockGeocodeClient) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "失敗: API キー未設定は 503",
			address: "東京都",
			mockClient: func(m *MockGeocodeClient) {
				m.GeocodeFunc = func(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
					return nil, client.ErrNoAPIKey
				}
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:    "失敗: 解決できない住所は 404",
			address: "存在しない住所",
			mockClient: func(m *MockGeocodeClient) {
				m.GeocodeFunc = func(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
					return nil, client.ErrAddressNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "失敗: プロバイダ障害は 502",
			address: "東京都",
			mockClient: func(m *MockGeocodeClient) {
				m.GeocodeFunc = func(ctx context.Context, address string) (*dto.GeocodeResponse, error) {
					return nil, errors.New("geocode: provider returned status 500")
				}
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := &MockGeocodeClient{}
			tt.mockClient(mockClient)
			handler := NewGeocodeHandler(mockClient)

			router := setupTestRouter()
			router.GET("/api/geocode", handler.Geocode)

			target := "/api/geocode"
			if tt.address != "" {
				target += "?address=" + url.QueryEscape(tt.address)
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
