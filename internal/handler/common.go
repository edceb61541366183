package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"startup-hub-api/internal/middleware"
	"startup-hub-api/internal/response"
	"startup-hub-api/internal/service"
)

// HeaderClientID carries the pseudonymous client identifier for likes
const HeaderClientID = "x-client-id"

// parseID reads the :id path param; on failure it writes the 400 itself
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "IDの形式が不正です")
		return uuid.Nil, false
	}
	return id, true
}

// listOptions builds listing options from query params. includeInactive
// only takes effect for requests the admin guard verified; anonymous
// callers always get the public view.
func listOptions(c *gin.Context) service.ListOptions {
	return service.ListOptions{
		IncludeInactive: c.Query("includeInactive") == "true" && middleware.IsAdmin(c),
		IncludePast:     c.Query("includePast") == "true",
	}
}

// grouped reports whether the client asked for the area-sectioned shape
func grouped(c *gin.Context) bool {
	return c.Query("grouped") == "true"
}

// clientID reads the like identity header; on failure it writes the 400 itself
func clientID(c *gin.Context) (string, bool) {
	id := c.GetHeader(HeaderClientID)
	if id == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "x-client-id ヘッダーが必要です")
		return "", false
	}
	if len(id) > 100 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "x-client-id が長すぎます")
		return "", false
	}
	return id, true
}
