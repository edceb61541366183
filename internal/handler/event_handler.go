package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"startup-hub-api/internal/dto"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// GetEvents godoc
// @Summary      イベント一覧取得
// @Tags         events
// @Produce      json
// @Param        grouped query bool false "エリア別にグループ化"
// @Param        includePast query bool false "終了済みも含める"
// @Success      200 {array} domain.Event "イベント一覧"
// @Router       /events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
	opts := listOptions(c)
	if grouped(c) {
		groups, err := h.eventService.GetEventsGrouped(c.Request.Context(), opts)
		if err != nil {
			handleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	events, err := h.eventService.GetEvents(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary      イベント詳細取得
// @Tags         events
// @Param        id path string true "イベントID"
// @Success      200 {object} domain.Event "イベント詳細"
// @Router       /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	event, err := h.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent godoc
// @Summary      イベント作成
// @Tags         events
// @Param        request body dto.CreateEventRequest true "イベント作成リクエスト"
// @Success      201 {object} domain.Event "作成されたイベント"
// @Security     AdminAuth
// @Router       /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ReplaceEvent godoc
// @Summary      イベント全体更新
// @Tags         events
// @Param        id path string true "イベントID"
// @Security     AdminAuth
// @Router       /events/{id} [put]
func (h *EventHandler) ReplaceEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	event, err := h.eventService.ReplaceEvent(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// PatchEvent godoc
// @Summary      イベント部分更新
// @Tags         events
// @Param        id path string true "イベントID"
// @Security     AdminAuth
// @Router       /events/{id} [patch]
func (h *EventHandler) PatchEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PatchEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "リクエストボディが不正です")
		return
	}

	event, err := h.eventService.PatchEvent(c.Request.Context(), id, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary      イベント削除
// @Tags         events
// @Param        id path string true "イベントID"
// @Success      200 {object} map[string]string "削除成功"
// @Security     AdminAuth
// @Router       /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "削除しました"})
}
