package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// AssetProvisionHandler handles asset provision endpoints
type AssetProvisionHandler struct {
	assetProvisionService service.AssetProvisionService
}

// NewAssetProvisionHandler creates a new AssetProvisionHandler
func NewAssetProvisionHandler(assetProvisionService service.AssetProvisionService) *AssetProvisionHandler {
	return &AssetProvisionHandler{assetProvisionService: assetProvisionService}
}

// GetAssetProvisions godoc
// @Summary      アセット提供一覧取得
// @Tags         asset-provisions
// @Produce      json
// @Param        grouped query bool false "エリア別にグループ化"
// @Param        includePast query bool false "締切済みも含める"
// @Success      200 {array} domain.AssetProvision "アセット提供一覧"
// @Router       /asset-provisions [get]
func (h *AssetProvisionHandler) GetAssetProvisions(c *gin.Context) {
	opts := listOptions(c)
	if grouped(c) {
		groups, err := h.assetProvisionService.GetAssetProvisionsGrouped(c.Request.Context(), opts)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	provisions, err := h.assetProvisionService.GetAssetProvisions(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provisions)
}

// GetAssetProvision godoc
// @Summary      アセット提供詳細取得
// @Tags         asset-provisions
// @Param        id path string true "アセット提供ID"
// @Success      200 {object} domain.AssetProvision "アセット提供詳細"
// @Router       /asset-provisions/{id} [get]
func (h *AssetProvisionHandler) GetAssetProvision(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	provision, err := h.assetProvisionService.GetAssetProvisionByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provision)
}

// CreateAssetProvision godoc
// @Summary      アセット提供作成
// @Tags         asset-provisions
// @Param        request body dto.CreateAssetProvisionRequest true "アセット提供作成リクエスト"
// @Success      201 {object} domain.AssetProvision "作成されたアセット提供"
// @Security     AdminAuth
// @Router       /asset-provisions [post]
func (h *AssetProvisionHandler) CreateAssetProvision(c *gin.Context) {
	var req dto.CreateAssetProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	provision, err := h.assetProvisionService.CreateAssetProvision(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, provision)
}

// ReplaceAssetProvision godoc
// @Summary      アセット提供全体更新
// @Tags         asset-provisions
// @Param        id path string true "アセット提供ID"
// @Security     AdminAuth
// @Router       /asset-provisions/{id} [put]
func (h *AssetProvisionHandler) ReplaceAssetProvision(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateAssetProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	provision, err := h.assetProvisionService.ReplaceAssetProvision(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provision)
}

// PatchAssetProvision godoc
// @Summary      アセット提供部分更新
// @Tags         asset-provisions
// @Param        id path string true "アセット提供ID"
// @Security     AdminAuth
// @Router       /asset-provisions/{id} [patch]
func (h *AssetProvisionHandler) PatchAssetProvision(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchAssetProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	provision, err := h.assetProvisionService.PatchAssetProvision(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provision)
}

// DeleteAssetProvision godoc
// @Summary      アセット提供削除
// @Tags         asset-provisions
// @Param        id path string true "アセット提供ID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /asset-provisions/{id} [delete]
func (h *AssetProvisionHandler) DeleteAssetProvision(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.assetProvisionService.DeleteAssetProvision(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
