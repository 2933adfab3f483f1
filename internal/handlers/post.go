package handlers

import (
	"net/http"

	"blogapi/internal/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	posts *services.PostService
}

func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create handles POST /api/posts?userId=
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req services.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.posts.Create(req, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/posts?userId=
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.posts.List("", optionalUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListByUser handles GET /api/posts/user/:userId
func (h *PostHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	posts, err := h.posts.ListByUser(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(posts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// ListByCategory handles GET /api/posts/:id where the wildcard is a category
// token; "all" (any case) lists everything.
func (h *PostHandler) ListByCategory(c *gin.Context) {
	category := c.Param("id")

	posts, err := h.posts.List(category, optionalUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(posts) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// Update handles PUT /api/posts/:id?userId=
func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	var req services.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.posts.Update(postID, req, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/posts/:id?userId=
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	if err := h.posts.Delete(postID, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// ToggleLike handles POST /api/posts/:id/toggle-like with body {"userId": n}.
// A missing userId is a 400; this path is deliberately non-idempotent.
func (h *PostHandler) ToggleLike(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body struct {
		UserID *uint `json:"userId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.UserID == nil || *body.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required"})
		return
	}

	result, err := h.posts.ToggleLike(postID, *body.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddLike handles POST /api/posts/:id/like?userId= (idempotent).
func (h *PostHandler) AddLike(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	result, err := h.posts.AddLike(postID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RemoveLike handles POST /api/posts/:id/unlike?userId= (idempotent).
func (h *PostHandler) RemoveLike(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	result, err := h.posts.RemoveLike(postID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListLikes handles GET /api/posts/:id/likes and returns the liker ids as a
// bare array, the shape legacy clients expect.
func (h *PostHandler) ListLikes(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ids, err := h.posts.ListLikerIDs(postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ids)
}

// LikesInfo handles GET /api/posts/:id/likes/info?userId=
func (h *PostHandler) LikesInfo(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	info, err := h.posts.GetLikesInfo(postID, optionalUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
