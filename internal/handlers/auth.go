package handlers

import (
	"net/http"

	"blogapi/internal/services"
	"blogapi/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// SignUp handles POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req services.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.auth.SignUp(req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully!"})
}

// SignIn handles POST /api/auth/signin. Failures are a single generic 400
// that never says whether the email or the password was wrong.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req services.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	identity, err := h.auth.SignIn(req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

// GetUserNames handles GET /api/auth/getUserNames?userIds=1,2,3
func (h *AuthHandler) GetUserNames(c *gin.Context) {
	ids := utils.ParseUintList(c.Query("userIds"))

	names, err := h.auth.UsernamesByIDs(ids)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"usernames": names})
}
