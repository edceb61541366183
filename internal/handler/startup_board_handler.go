package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// StartupBoardHandler handles startup board endpoints, including likes
type StartupBoardHandler struct {
	boardService service.StartupBoardService
}

// NewStartupBoardHandler creates a new StartupBoardHandler
func NewStartupBoardHandler(boardService service.StartupBoardService) *StartupBoardHandler {
	return &StartupBoardHandler{boardService: boardService}
}

// GetStartupBoards godoc
// @Summary      スタートアップボード一覧取得
// @Tags         startup-boards
// @Produce      json
// @Param        grouped query bool false "エリア別にグループ化"
// @Success      200 {array} domain.StartupBoard "スタートアップボード一覧"
// @Router       /startup-boards [get]
func (h *StartupBoardHandler) GetStartupBoards(c *gin.Context) {
	opts := listOptions(c)
	if grouped(c) {
		groups, err := h.boardService.GetStartupBoardsGrouped(c.Request.Context(), opts)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	boards, err := h.boardService.GetStartupBoards(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// GetStartupBoard godoc
// @Summary      スタートアップボード詳細取得
// @Tags         startup-boards
// @Param        id path string true "ボードID"
// @Success      200 {object} domain.StartupBoard "ボード詳細"
// @Router       /startup-boards/{id} [get]
func (h *StartupBoardHandler) GetStartupBoard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	board, err := h.boardService.GetStartupBoardByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// CreateStartupBoard godoc
// @Summary      スタートアップボード作成
// @Tags         startup-boards
// @Param        request body dto.CreateStartupBoardRequest true "ボード作成リクエスト"
// @Success      201 {object} domain.StartupBoard "作成されたボード"
// @Security     AdminAuth
// @Router       /startup-boards [post]
func (h *StartupBoardHandler) CreateStartupBoard(c *gin.Context) {
	var req dto.CreateStartupBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	board, err := h.boardService.CreateStartupBoard(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, board)
}

// ReplaceStartupBoard godoc
// @Summary      スタートアップボード全体更新
// @Tags         startup-boards
// @Param        id path string true "ボードID"
// @Security     AdminAuth
// @Router       /startup-boards/{id} [put]
func (h *StartupBoardHandler) ReplaceStartupBoard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateStartupBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	board, err := h.boardService.ReplaceStartupBoard(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// PatchStartupBoard godoc
// @Summary      スタートアップボード部分更新
// @Tags         startup-boards
// @Param        id path string true "ボードID"
// @Security     AdminAuth
// @Router       /startup-boards/{id} [patch]
func (h *StartupBoardHandler) PatchStartupBoard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchStartupBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	board, err := h.boardService.PatchStartupBoard(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// DeleteStartupBoard godoc
// @Summary      スタートアップボード削除
// @Tags         startup-boards
// @Param        id path string true "ボードID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /startup-boards/{id} [delete]
func (h *StartupBoardHandler) DeleteStartupBoard(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.boardService.DeleteStartupBoard(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}

// ToggleLike godoc
// @Summary      ボードのいいね切替
// @Description  x-client-id ヘッダーのクライアント単位でいいねをトグルします
// @Tags         startup-boards
// @Produce      json
// @Param        id path string true "ボードID"
// @Param        x-client-id header string true "クライアントID"
// @Success      200 {object} dto.LikeStatusResponse "いいね状態"
// @Failure      400 {object} response.ErrorResponse "ヘッダー不足"
// @Router       /startup-boards/{id}/like [post]
func (h *StartupBoardHandler) ToggleLike(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, ok := clientID(c)
	if !ok {
		return
	}

	status, err := h.boardService.ToggleLike(c.Request.Context(), id, client)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetLikeStatus godoc
// @Summary      ボードのいいね状態取得
// @Tags         startup-boards
// @Produce      json
// @Param        id path string true "ボードID"
// @Param        x-client-id header string true "クライアントID"
// @Success      200 {object} dto.LikeStatusResponse "いいね状態"
// @Router       /startup-boards/{id}/like [get]
func (h *StartupBoardHandler) GetLikeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	client, ok := clientID(c)
	if !ok {
		return
	}

	status, err := h.boardService.GetLikeStatus(c.Request.Context(), id, client)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
