package handlers

import (
	"net/http"

	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
)

type SavedPostHandler struct {
	saved *services.SavedPostService
}

func NewSavedPostHandler(saved *services.SavedPostService) *SavedPostHandler {
	return &SavedPostHandler{saved: saved}
}

// Toggle handles POST /api/posts/:id/save?userId= - 收藏/取消收藏
func (h *SavedPostHandler) Toggle(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	result, err := h.saved.Toggle(postID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListByUser handles GET /api/users/:userId/saved
func (h *SavedPostHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	saved, err := h.saved.ListByUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(saved) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, saved)
}
