package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// LocationHandler handles location endpoints
type LocationHandler struct {
	locationService service.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationService service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// GetLocations godoc
// @Summary      ロケーション一覧取得
// @Description  国内を北から南の地方順、海外を国名順に並べます。grouped=true で地方・国別セクションに分割します
// @Tags         locations
// @Produce      json
// @Param        grouped query bool false "地方・国別にグループ化"
// @Success      200 {array} domain.Location "ロケーション一覧"
// @Router       /locations [get]
func (h *LocationHandler) GetLocations(c *gin.Context) {
	if grouped(c) {
		groups, err := h.locationService.GetLocationsGrouped(c.Request.Context())
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	locations, err := h.locationService.GetLocations(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GetLocation godoc
// @Summary      ロケーション詳細取得
// @Tags         locations
// @Param        id path string true "ロケーションID"
// @Success      200 {object} domain.Location "ロケーション詳細(所属ワークスペース込み)"
// @Router       /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	location, err := h.locationService.GetLocationByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// CreateLocation godoc
// @Summary      ロケーション作成
// @Tags         locations
// @Param        request body dto.CreateLocationRequest true "ロケーション作成リクエスト"
// @Success      201 {object} domain.Location "作成されたロケーション"
// @Security     AdminAuth
// @Router       /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	location, err := h.locationService.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

// ReplaceLocation godoc
// @Summary      ロケーション全体更新
// @Tags         locations
// @Param        id path string true "ロケーションID"
// @Security     AdminAuth
// @Router       /locations/{id} [put]
func (h *LocationHandler) ReplaceLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	location, err := h.locationService.ReplaceLocation(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// PatchLocation godoc
// @Summary      ロケーション部分更新
// @Tags         locations
// @Param        id path string true "ロケーションID"
// @Security     AdminAuth
// @Router       /locations/{id} [patch]
func (h *LocationHandler) PatchLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	location, err := h.locationService.PatchLocation(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// DeleteLocation godoc
// @Summary      ロケーション削除
// @Description  所属ワークスペースは削除せず、ロケーションとの紐付けだけ外します
// @Tags         locations
// @Param        id path string true "ロケーションID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.locationService.DeleteLocation(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
