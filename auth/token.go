package auth

import (
	"net/http"
	"strings"

	"blogserver/models"

	"github.com/gin-gonic/gin"
)

const userKey = "current_user"

// Middleware resolves the Authorization header into the acting user.
// No header leaves the request anonymous (safe methods are gated per
// resource later); a present but invalid token is rejected outright.
func Middleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.Next()
		return
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || (parts[0] != "Token" && parts[0] != "Bearer") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token header."})
		return
	}
	user, ok := models.TokenUser(parts[1])
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
		return
	}
	c.Set(userKey, &user)
	c.Next()
}

// CurrentUser returns the authenticated user or nil for anonymous.
func CurrentUser(c *gin.Context) *models.User {
	v, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	return v.(*models.User)
}
