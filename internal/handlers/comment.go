package handlers

import (
	"net/http"

	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// Create handles POST /api/posts/:id/comments?userId=
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req services.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.comments.Create(req, postID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListByPost handles GET /api/posts/:id/comments
func (h *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListByPost(postID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(comments) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Get handles GET /api/comments/:commentId
func (h *CommentHandler) Get(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	resp, err := h.comments.Get(commentID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/comments/:commentId?userId=
func (h *CommentHandler) Update(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req services.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.comments.Update(commentID, req, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/comments/:commentId?userId=
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	if err := h.comments.Delete(commentID, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// Count handles GET /api/posts/:id/comments/count
func (h *CommentHandler) Count(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	count, err := h.comments.CountByPost(postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// ListByUser handles GET /api/users/:userId/comments
func (h *CommentHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	comments, err := h.comments.ListByUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(comments) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, comments)
}
