package handlers

import (
	"net/http"
	"strconv"

	"blogserver/auth"
	"blogserver/models"
	"blogserver/policy"

	"github.com/gin-gonic/gin"
)

var (
	// Predefined error envelopes
	ErrNotAuthenticated = gin.H{"detail": "Authentication credentials were not provided."}
	ErrForbidden        = gin.H{"detail": "You do not have permission to perform this action."}
	ErrNotFound         = gin.H{"detail": "Not found."}
	ErrDB               = gin.H{"detail": "DB error"}
)

// checkAttempt runs the object-independent policy gate. A denied
// anonymous write is a 401, everything else denied is a 403.
func checkAttempt(c *gin.Context, resource string) (*models.User, bool) {
	actor := auth.CurrentUser(c)
	if !policy.For(resource).CanAttempt(c.Request.Method, actor) {
		if actor == nil {
			c.JSON(http.StatusUnauthorized, ErrNotAuthenticated)
		} else {
			c.JSON(http.StatusForbidden, ErrForbidden)
		}
		return nil, false
	}
	return actor, true
}

// checkObject runs the per-object policy gate. Denials carry no
// ownership details.
func checkObject(c *gin.Context, resource string, actor *models.User, ownerID uint64) bool {
	if !policy.For(resource).CanActOn(c.Request.Method, actor, ownerID) {
		c.JSON(http.StatusForbidden, ErrForbidden)
		return false
	}
	return true
}

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, ErrNotFound)
		return 0, false
	}
	return id, true
}
