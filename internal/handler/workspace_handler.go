package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// WorkspaceHandler handles workspace endpoints, including likes and ranking
type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

// NewWorkspaceHandler creates a new WorkspaceHandler
func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

// GetWorkspaces godoc
// @Summary      ワークスペース一覧取得
// @Tags         workspaces
// @Produce      json
// @Success      200 {array} domain.Workspace "ワークスペース一覧"
// @Router       /workspaces [get]
func (h *WorkspaceHandler) GetWorkspaces(c *gin.Context) {
	workspaces, err := h.workspaceService.GetWorkspaces(c.Request.Context(), listOptions(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workspaces)
}

// GetRanking godoc
// @Summary      ワークスペースいいねランキング取得
// @Description  いいね数上位10件を返します。同数の場合は先にいいねが付いた方が上位です
// @Tags         workspaces
// @Produce      json
// @Success      200 {array} dto.WorkspaceRankingEntry "ランキング"
// @Router       /workspaces/ranking [get]
func (h *WorkspaceHandler) GetRanking(c *gin.Context) {
	entries, err := h.workspaceService.GetRanking(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetWorkspace godoc
// @Summary      ワークスペース詳細取得
// @Tags         workspaces
// @Param        id path string true "ワークスペースID"
// @Success      200 {object} domain.Workspace "ワークスペース詳細"
// @Router       /workspaces/{id} [get]
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	workspace, err := h.workspaceService.GetWorkspaceByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workspace)
}

// CreateWorkspace godoc
// @Summary      ワークスペース作成
// @Tags         workspaces
// @Param        request body dto.CreateWorkspaceRequest true "ワークスペース作成リクエスト"
// @Success      201 {object} domain.Workspace "作成されたワークスペース"
// @Security     AdminAuth
// @Router       /workspaces [post]
func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	workspace, err := h.workspaceService.CreateWorkspace(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workspace)
}

// ReplaceWorkspace godoc
// @Summary      ワークスペース全体更新
// @Tags         workspaces
// @Param        id path string true "ワークスペースID"
// @Security     AdminAuth
// @Router       /workspaces/{id} [put]
func (h *WorkspaceHandler) ReplaceWorkspace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	workspace, err := h.workspaceService.ReplaceWorkspace(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workspace)
}

// PatchWorkspace godoc
// @Summary      ワークスペース部分更新
// @Tags         workspaces
// @Param        id path string true "ワークスペースID"
// @Security     AdminAuth
// @Router       /workspaces/{id} [patch]
func (h *WorkspaceHandler) PatchWorkspace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	workspace, err := h.workspaceService.PatchWorkspace(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workspace)
}

// DeleteWorkspace godoc
// @Summary      ワークスペース削除
// @Tags         workspaces
// @Param        id path string true "ワークスペースID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /workspaces/{id} [delete]
func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}

// ToggleLike godoc
// @Summary      ワークスペースのいいね切替
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "ワークスペースID"
// @Param        x-client-id header string true "クライアントID"
// @Success      200 {object} dto.LikeStatusResponse "いいね状態"
// @Router       /workspaces/{id}/like [post]
func (h *WorkspaceHandler) ToggleLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, ok := clientID(c)
	if !ok {
		return
	}

	status, err := h.workspaceService.ToggleLike(c.Request.Context(), id, client)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetLikeStatus godoc
// @Summary      ワークスペースのいいね状態取得
// @Tags         workspaces
// @Produce      json
// @Param        id path string true "ワークスペースID"
// @Param        x-client-id header string true "クライアントID"
// @Success      200 {object} dto.LikeStatusResponse "いいね状態"
// @Router       /workspaces/{id}/like [get]
func (h *WorkspaceHandler) GetLikeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, ok := clientID(c)
	if !ok {
		return
	}

	status, err := h.workspaceService.GetLikeStatus(c.Request.Context(), id, client)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
