package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// FacilityHandler handles support facility endpoints
type FacilityHandler struct {
	facilityService service.FacilityService
}

// NewFacilityHandler creates a new FacilityHandler
func NewFacilityHandler(facilityService service.FacilityService) *FacilityHandler {
	return &FacilityHandler{facilityService: facilityService}
}

// GetFacilities godoc
// @Summary      支援施設一覧取得
// @Tags         facilities
// @Produce      json
// @Param        grouped query bool false "エリア別にグループ化"
// @Success      200 {array} domain.Facility "支援施設一覧"
// @Router       /facilities [get]
func (h *FacilityHandler) GetFacilities(c *gin.Context) {
	opts := listOptions(c)
	if grouped(c) {
		groups, err := h.facilityService.GetFacilitiesGrouped(c.Request.Context(), opts)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	facilities, err := h.facilityService.GetFacilities(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, facilities)
}

// GetFacility godoc
// @Summary      支援施設詳細取得
// @Tags         facilities
// @Param        id path string true "支援施設ID"
// @Success      200 {object} domain.Facility "支援施設詳細"
// @Router       /facilities/{id} [get]
func (h *FacilityHandler) GetFacility(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	facility, err := h.facilityService.GetFacilityByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, facility)
}

// CreateFacility godoc
// @Summary      支援施設作成
// @Tags         facilities
// @Param        request body dto.CreateFacilityRequest true "支援施設作成リクエスト"
// @Success      201 {object} domain.Facility "作成された支援施設"
// @Security     AdminAuth
// @Router       /facilities [post]
func (h *FacilityHandler) CreateFacility(c *gin.Context) {
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	facility, err := h.facilityService.CreateFacility(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, facility)
}

// ReplaceFacility godoc
// @Summary      支援施設全体更新
// @Tags         facilities
// @Param        id path string true "支援施設ID"
// @Security     AdminAuth
// @Router       /facilities/{id} [put]
func (h *FacilityHandler) ReplaceFacility(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	facility, err := h.facilityService.ReplaceFacility(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, facility)
}

// PatchFacility godoc
// @Summary      支援施設部分更新
// @Tags         facilities
// @Param        id path string true "支援施設ID"
// @Security     AdminAuth
// @Router       /facilities/{id} [patch]
func (h *FacilityHandler) PatchFacility(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	facility, err := h.facilityService.PatchFacility(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, facility)
}

// DeleteFacility godoc
// @Summary      支援施設削除
// @Tags         facilities
// @Param        id path string true "支援施設ID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /facilities/{id} [delete]
func (h *FacilityHandler) DeleteFacility(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.facilityService.DeleteFacility(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
