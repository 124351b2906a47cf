package handlers

import (
	"net/http"

	"blogserver/db"
	"blogserver/models"

	"github.com/gin-gonic/gin"
)

type UserCreateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserInfo struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

func UserCreate(c *gin.Context) {
	req := UserCreateRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	existing := models.User{}
	if db.Instance.First(&existing, "name = ?", req.Username).Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"username": []string{"A user with that username already exists."},
		})
		return
	}
	user, err := models.UserCreate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	c.JSON(http.StatusCreated, UserInfo{ID: user.ID, Username: user.Name})
}
