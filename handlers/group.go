package handlers

import (
	"net/http"

	"blogserver/db"
	"blogserver/models"
	"blogserver/serialize"

	"github.com/gin-gonic/gin"
)

// Groups are read-only over the API; no write routes exist for them.

func GroupList(c *gin.Context) {
	if _, ok := checkAttempt(c, "groups"); !ok {
		return
	}
	groups := []models.Group{}
	if db.Instance.Order("id ASC").Find(&groups).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	result := []serialize.GroupSummary{}
	for i := range groups {
		result = append(result, serialize.GroupToSummary(&groups[i]))
	}
	c.JSON(http.StatusOK, result)
}

func GroupGet(c *gin.Context) {
	if _, ok := checkAttempt(c, "groups"); !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	group := models.Group{}
	if db.Instance.First(&group, id).Error != nil {
		c.JSON(http.StatusNotFound, ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, serialize.GroupToDetail(&group))
}
