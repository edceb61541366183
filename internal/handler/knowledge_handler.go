package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// KnowledgeHandler handles knowledge article endpoints
type KnowledgeHandler struct {
	knowledgeService service.KnowledgeService
}

// NewKnowledgeHandler creates a new KnowledgeHandler
func NewKnowledgeHandler(knowledgeService service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledgeService: knowledgeService}
}

// GetKnowledge godoc
// @Summary      ナレッジ記事一覧取得
// @Description  公開日の新しい順に返します。本文は Markdown のまま返し、描画はクライアントに任せます
// @Tags         knowledge
// @Produce      json
// @Success      200 {array} domain.Knowledge "ナレッジ記事一覧"
// @Router       /knowledge [get]
func (h *KnowledgeHandler) GetKnowledge(c *gin.Context) {
	articles, err := h.knowledgeService.GetKnowledge(c.Request.Context(), listOptions(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetKnowledgeByID godoc
// @Summary      ナレッジ記事詳細取得
// @Tags         knowledge
// @Param        id path string true "記事ID"
// @Success      200 {object} domain.Knowledge "記事詳細"
// @Router       /knowledge/{id} [get]
func (h *KnowledgeHandler) GetKnowledgeByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	article, err := h.knowledgeService.GetKnowledgeByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// CreateKnowledge godoc
// @Summary      ナレッジ記事作成
// @Tags         knowledge
// @Param        request body dto.CreateKnowledgeRequest true "記事作成リクエスト"
// @Success      201 {object} domain.Knowledge "作成された記事"
// @Security     AdminAuth
// @Router       /knowledge [post]
func (h *KnowledgeHandler) CreateKnowledge(c *gin.Context) {
	var req dto.CreateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	article, err := h.knowledgeService.CreateKnowledge(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

// ReplaceKnowledge godoc
// @Summary      ナレッジ記事全体更新
// @Tags         knowledge
// @Param        id path string true "記事ID"
// @Security     AdminAuth
// @Router       /knowledge/{id} [put]
func (h *KnowledgeHandler) ReplaceKnowledge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	article, err := h.knowledgeService.ReplaceKnowledge(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// PatchKnowledge godoc
// @Summary      ナレッジ記事部分更新
// @Tags         knowledge
// @Param        id path string true "記事ID"
// @Security     AdminAuth
// @Router       /knowledge/{id} [patch]
func (h *KnowledgeHandler) PatchKnowledge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	article, err := h.knowledgeService.PatchKnowledge(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// DeleteKnowledge godoc
// @Summary      ナレッジ記事削除
// @Tags         knowledge
// @Param        id path string true "記事ID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /knowledge/{id} [delete]
func (h *KnowledgeHandler) DeleteKnowledge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.knowledgeService.DeleteKnowledge(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
