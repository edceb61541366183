package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// SubsidyHandler handles subsidy endpoints
type SubsidyHandler struct {
	subsidyService service.SubsidyService
}

// NewSubsidyHandler creates a new SubsidyHandler
func NewSubsidyHandler(subsidyService service.SubsidyService) *SubsidyHandler {
	return &SubsidyHandler{subsidyService: subsidyService}
}

// GetSubsidies godoc
// @Summary      補助金一覧取得
// @Tags         subsidies
// @Produce      json
// @Param        grouped query bool false "エリア別にグループ化"
// @Param        includePast query bool false "締切済みも含める"
// @Success      200 {array} domain.Subsidy "補助金一覧"
// @Router       /subsidies [get]
func (h *SubsidyHandler) GetSubsidies(c *gin.Context) {
	opts := listOptions(c)
	if grouped(c) {
		groups, err := h.subsidyService.GetSubsidiesGrouped(c.Request.Context(), opts)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	subsidies, err := h.subsidyService.GetSubsidies(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subsidies)
}

// GetSubsidy godoc
// @Summary      補助金詳細取得
// @Tags         subsidies
// @Param        id path string true "補助金ID"
// @Success      200 {object} domain.Subsidy "補助金詳細"
// @Router       /subsidies/{id} [get]
func (h *SubsidyHandler) GetSubsidy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	subsidy, err := h.subsidyService.GetSubsidyByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subsidy)
}

// CreateSubsidy godoc
// @Summary      補助金作成
// @Tags         subsidies
// @Param        request body dto.CreateSubsidyRequest true "補助金作成リクエスト"
// @Success      201 {object} domain.Subsidy "作成された補助金"
// @Security     AdminAuth
// @Router       /subsidies [post]
func (h *SubsidyHandler) CreateSubsidy(c *gin.Context) {
	var req dto.CreateSubsidyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	subsidy, err := h.subsidyService.CreateSubsidy(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subsidy)
}

// ReplaceSubsidy godoc
// @Summary      補助金全体更新
// @Tags         subsidies
// @Param        id path string true "補助金ID"
// @Security     AdminAuth
// @Router       /subsidies/{id} [put]
func (h *SubsidyHandler) ReplaceSubsidy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateSubsidyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	subsidy, err := h.subsidyService.ReplaceSubsidy(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subsidy)
}

// PatchSubsidy godoc
// @Summary      補助金部分更新
// @Tags         subsidies
// @Param        id path string true "補助金ID"
// @Security     AdminAuth
// @Router       /subsidies/{id} [patch]
func (h *SubsidyHandler) PatchSubsidy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchSubsidyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	subsidy, err := h.subsidyService.PatchSubsidy(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subsidy)
}

// DeleteSubsidy godoc
// @Summary      補助金削除
// @Tags         subsidies
// @Param        id path string true "補助金ID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /subsidies/{id} [delete]
func (h *SubsidyHandler) DeleteSubsidy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.subsidyService.DeleteSubsidy(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
