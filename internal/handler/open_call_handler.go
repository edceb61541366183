package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// OpenCallHandler handles open-call endpoints
type OpenCallHandler struct {
	openCallService service.OpenCallService
}

// NewOpenCallHandler creates a new OpenCallHandler
func NewOpenCallHandler(openCallService service.OpenCallService) *OpenCallHandler {
	return &OpenCallHandler{openCallService: openCallService}
}

// GetOpenCalls godoc
// @Summary      公募一覧取得
// @Tags         open-calls
// @Produce      json
// @Param        grouped query bool false "エリア別にグループ化"
// @Param        includePast query bool false "締切済みも含める"
// @Success      200 {array} domain.OpenCall "公募一覧"
// @Router       /open-calls [get]
func (h *OpenCallHandler) GetOpenCalls(c *gin.Context) {
	opts := listOptions(c)
	if grouped(c) {
		groups, err := h.openCallService.GetOpenCallsGrouped(c.Request.Context(), opts)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	openCalls, err := h.openCallService.GetOpenCalls(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, openCalls)
}

// GetOpenCall godoc
// @Summary      公募詳細取得
// @Tags         open-calls
// @Produce      json
// @Param        id path string true "公募ID"
// @Success      200 {object} domain.OpenCall "公募詳細"
// @Router       /open-calls/{id} [get]
func (h *OpenCallHandler) GetOpenCall(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	openCall, err := h.openCallService.GetOpenCallByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, openCall)
}

// CreateOpenCall godoc
// @Summary      公募作成
// @Tags         open-calls
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOpenCallRequest true "公募作成リクエスト"
// @Success      201 {object} domain.OpenCall "作成された公募"
// @Security     AdminAuth
// @Router       /open-calls [post]
func (h *OpenCallHandler) CreateOpenCall(c *gin.Context) {
	var req dto.CreateOpenCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	openCall, err := h.openCallService.CreateOpenCall(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, openCall)
}

// ReplaceOpenCall godoc
// @Summary      公募全体更新
// @Tags         open-calls
// @Param        id path string true "公募ID"
// @Security     AdminAuth
// @Router       /open-calls/{id} [put]
func (h *OpenCallHandler) ReplaceOpenCall(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateOpenCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	openCall, err := h.openCallService.ReplaceOpenCall(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, openCall)
}

// PatchOpenCall godoc
// @Summary      公募部分更新
// @Tags         open-calls
// @Param        id path string true "公募ID"
// @Security     AdminAuth
// @Router       /open-calls/{id} [patch]
func (h *OpenCallHandler) PatchOpenCall(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchOpenCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	openCall, err := h.openCallService.PatchOpenCall(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, openCall)
}

// DeleteOpenCall godoc
// @Summary      公募削除
// @Tags         open-calls
// @Param        id path string true "公募ID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /open-calls/{id} [delete]
func (h *OpenCallHandler) DeleteOpenCall(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.openCallService.DeleteOpenCall(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
