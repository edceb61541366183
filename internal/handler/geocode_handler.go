package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/client"
	"startup-hub-api/internal/response"
)

// GeocodeHandler proxies address lookups so the API key never reaches
// the browser
type GeocodeHandler struct {
	geocoder client.GeocodeClient
}

// NewGeocodeHandler creates a new GeocodeHandler
func NewGeocodeHandler(geocoder client.GeocodeClient) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Geocode godoc
// @Summary      住所のジオコーディング
// @Description  住所を緯度経度に変換します。結果はプロセス内にキャッシュされます
// @Tags         geocode
// @Produce      json
// @Param        address query string true "住所"
// @Success      200 {object} dto.GeocodeResponse "座標"
// @Failure      400 {object} response.ErrorResponse "address パラメータ不足"
// @Failure      404 {object} response.ErrorResponse "住所を解決できません"
// @Failure      503 {object} response.ErrorResponse "ジオコーディング未設定"
// @Router       /geocode [get]
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "address クエリパラメータが必要です")
		return
	}

	result, err := h.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, client.ErrNoAPIKey):
			response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeInternal, "ジオコーディングは現在利用できません")
		case errors.Is(err, client.ErrAddressNotFound):
			response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "住所を解決できませんでした")
		default:
			response.SendError(c, http.StatusBadGateway, response.ErrCodeInternal, "ジオコーディングに失敗しました")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
