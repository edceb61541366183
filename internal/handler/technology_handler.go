package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// TechnologyHandler handles technology seed endpoints
type TechnologyHandler struct {
	technologyService service.TechnologyService
}

// NewTechnologyHandler creates a new TechnologyHandler
func NewTechnologyHandler(technologyService service.TechnologyService) *TechnologyHandler {
	return &TechnologyHandler{technologyService: technologyService}
}

// GetTechnologies godoc
// @Summary      技術シーズ一覧取得
// @Tags         technologies
// @Produce      json
// @Success      200 {array} domain.Technology "技術シーズ一覧"
// @Router       /technologies [get]
func (h *TechnologyHandler) GetTechnologies(c *gin.Context) {
	technologies, err := h.technologyService.GetTechnologies(c.Request.Context(), listOptions(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, technologies)
}

// GetTechnology godoc
// @Summary      技術シーズ詳細取得
// @Tags         technologies
// @Param        id path string true "技術シーズID"
// @Success      200 {object} domain.Technology "技術シーズ詳細"
// @Router       /technologies/{id} [get]
func (h *TechnologyHandler) GetTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	technology, err := h.technologyService.GetTechnologyByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, technology)
}

// CreateTechnology godoc
// @Summary      技術シーズ作成
// @Tags         technologies
// @Param        request body dto.CreateTechnologyRequest true "技術シーズ作成リクエスト"
// @Success      201 {object} domain.Technology "作成された技術シーズ"
// @Security     AdminAuth
// @Router       /technologies [post]
func (h *TechnologyHandler) CreateTechnology(c *gin.Context) {
	var req dto.CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	technology, err := h.technologyService.CreateTechnology(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, technology)
}

// ReplaceTechnology godoc
// @Summary      技術シーズ全体更新
// @Tags         technologies
// @Param        id path string true "技術シーズID"
// @Security     AdminAuth
// @Router       /technologies/{id} [put]
func (h *TechnologyHandler) ReplaceTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	technology, err := h.technologyService.ReplaceTechnology(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, technology)
}

// PatchTechnology godoc
// @Summary      技術シーズ部分更新
// @Tags         technologies
// @Param        id path string true "技術シーズID"
// @Security     AdminAuth
// @Router       /technologies/{id} [patch]
func (h *TechnologyHandler) PatchTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	technology, err := h.technologyService.PatchTechnology(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, technology)
}

// DeleteTechnology godoc
// @Summary      技術シーズ削除
// @Tags         technologies
// @Param        id path string true "技術シーズID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /technologies/{id} [delete]
func (h *TechnologyHandler) DeleteTechnology(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.technologyService.DeleteTechnology(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
