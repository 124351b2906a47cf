package handlers

import (
	"net/http"

	"blogserver/models"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ObtainAuthToken exchanges credentials for the user's opaque bearer
// token, creating it on first login.
func ObtainAuthToken(c *gin.Context) {
	req := TokenRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	user, ok := models.UserLogin(req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"non_field_errors": []string{"Unable to log in with provided credentials."},
		})
		return
	}
	token, err := models.TokenForUser(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token.Key})
}
