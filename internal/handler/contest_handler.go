package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// ContestHandler handles contest endpoints
type ContestHandler struct {
	contestService service.ContestService
}

// NewContestHandler creates a new ContestHandler
func NewContestHandler(contestService service.ContestService) *ContestHandler {
	return &ContestHandler{contestService: contestService}
}

// GetContests godoc
// @Summary      コンテスト一覧取得
// @Description  エリア順・締切順に並んだコンテスト一覧を返します。grouped=true でエリア別セクションに分割します
// @Tags         contests
// @Produce      json
// @Param        grouped query bool false "エリア別にグループ化"
// @Param        includePast query bool false "締切済みも含める"
// @Param        includeInactive query bool false "非公開も含める(管理者のみ)"
// @Success      200 {array} domain.Contest "コンテスト一覧"
// @Failure      500 {object} response.ErrorResponse "サーバーエラー"
// @Router       /contests [get]
func (h *ContestHandler) GetContests(c *gin.Context) {
	opts := listOptions(c)
	if grouped(c) {
		groups, err := h.contestService.GetContestsGrouped(c.Request.Context(), opts)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	contests, err := h.contestService.GetContests(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contests)
}

// GetContest godoc
// @Summary      コンテスト詳細取得
// @Tags         contests
// @Produce      json
// @Param        id path string true "コンテストID"
// @Success      200 {object} domain.Contest "コンテスト詳細"
// @Failure      404 {object} response.ErrorResponse "見つかりません"
// @Router       /contests/{id} [get]
func (h *ContestHandler) GetContest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contest, err := h.contestService.GetContestByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

// CreateContest godoc
// @Summary      コンテスト作成
// @Tags         contests
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateContestRequest true "コンテスト作成リクエスト"
// @Success      201 {object} domain.Contest "作成されたコンテスト"
// @Failure      400 {object} response.ErrorResponse "不正なリクエスト"
// @Failure      401 {object} response.ErrorResponse "認証エラー"
// @Security     AdminAuth
// @Router       /contests [post]
func (h *ContestHandler) CreateContest(c *gin.Context) {
	var req dto.CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	contest, err := h.contestService.CreateContest(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contest)
}

// ReplaceContest godoc
// @Summary      コンテスト全体更新
// @Tags         contests
// @Accept       json
// @Produce      json
// @Param        id path string true "コンテストID"
// @Param        request body dto.CreateContestRequest true "コンテスト更新リクエスト"
// @Success      200 {object} domain.Contest "更新後のコンテスト"
// @Failure      404 {object} response.ErrorResponse "見つかりません"
// @Security     AdminAuth
// @Router       /contests/{id} [put]
func (h *ContestHandler) ReplaceContest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	contest, err := h.contestService.ReplaceContest(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

// PatchContest godoc
// @Summary      コンテスト部分更新
// @Description  指定したフィールドだけを更新します。公開フラグの切替が主な用途です
// @Tags         contests
// @Accept       json
// @Produce      json
// @Param        id path string true "コンテストID"
// @Param        request body dto.PatchContestRequest true "コンテスト部分更新リクエスト"
// @Success      200 {object} domain.Contest "更新後のコンテスト"
// @Failure      404 {object} response.ErrorResponse "見つかりません"
// @Security     AdminAuth
// @Router       /contests/{id} [patch]
func (h *ContestHandler) PatchContest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	contest, err := h.contestService.PatchContest(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, contest)
}

// DeleteContest godoc
// @Summary      コンテスト削除
// @Description  行を物理削除します。復元はできません
// @Tags         contests
// @Param        id path string true "コンテストID"
// @Success      200 {object} map[string]string "削除成功"
// @Failure      404 {object} response.ErrorResponse "見つかりません"
// @Security     AdminAuth
// @Router       /contests/{id} [delete]
func (h *ContestHandler) DeleteContest(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contestService.DeleteContest(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
