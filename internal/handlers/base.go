package handlers

import (
	"net/http"

	"blogapi/internal/apperr"
	"blogapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// writeError maps error kinds to the response contract: not-found is a
// silent 404, authorization failures are 403 with a message, bad input is
// 400, everything else is 500 with the error text. The mapping is explicit
// per kind; no message matching.
func writeError(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		c.Status(http.StatusNotFound)
	case apperr.KindNotAuthorized:
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperr.KindInvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// pathID parses the named path parameter as an id.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParseUint(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

// queryUserID parses the required userId query parameter.
func queryUserID(c *gin.Context) (uint, bool) {
	id, err := utils.ParseUint(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return 0, false
	}
	return id, true
}

// optionalUserID parses the userId query parameter when present; a missing
// or malformed value means "no viewer", never an error.
func optionalUserID(c *gin.Context) *uint {
	id, err := utils.ParseUint(c.Query("userId"))
	if err != nil {
		return nil
	}
	return &id
}
