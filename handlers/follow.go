package handlers

import (
	"net/http"

	"blogserver/db"
	"blogserver/models"
	"blogserver/serialize"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// FollowList returns only the acting user's subscriptions. Optional
// ?search= filters by the followed username, substring match.
func FollowList(c *gin.Context) {
	actor, ok := checkAttempt(c, "follow")
	if !ok {
		return
	}
	tx := db.Instance.Preload("User").Preload("Following").
		Where("user_id = ?", actor.ID).
		Order("id ASC")
	if search := c.Query("search"); search != "" {
		tx = tx.Where("following_id IN (?)",
			db.Instance.Model(&models.User{}).Select("id").Where("name LIKE ?", "%"+search+"%"))
	}
	follows := []models.Follow{}
	if tx.Find(&follows).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	result := []serialize.FollowInfo{}
	for i := range follows {
		result = append(result, serialize.FollowToInfo(&follows[i]))
	}
	c.JSON(http.StatusOK, result)
}

// FollowCreate subscribes the acting user. The follower side is
// always the acting identity.
func FollowCreate(c *gin.Context) {
	actor, ok := checkAttempt(c, "follow")
	if !ok {
		return
	}
	w := serialize.FollowWrite{}
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	follow := models.Follow{}
	if errs := w.Apply(&follow, actor); !errs.Empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if db.Instance.Omit(clause.Associations).Create(&follow).Error != nil {
		// The unique index fired after the pre-check passed: a
		// concurrent request won the race. Same outcome as the
		// pre-check.
		c.JSON(http.StatusBadRequest, serialize.FieldErrors{
			"following": {serialize.MsgDuplicateFollow},
		})
		return
	}
	c.JSON(http.StatusCreated, serialize.FollowToInfo(&follow))
}

// FollowDelete removes a subscription. The lookup is scoped to the
// acting user, so another user's row is a plain 404.
func FollowDelete(c *gin.Context) {
	actor, ok := checkAttempt(c, "follow")
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	follow := models.Follow{}
	if db.Instance.Where("user_id = ?", actor.ID).First(&follow, id).Error != nil {
		c.JSON(http.StatusNotFound, ErrNotFound)
		return
	}
	if !checkObject(c, "follow", actor, follow.UserID) {
		return
	}
	if db.Instance.Delete(&models.Follow{}, follow.ID).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	c.Status(http.StatusNoContent)
}

// FollowUpdate exists only so PUT/PATCH resolve to a policy denial
// rather than an unknown route.
func FollowUpdate(c *gin.Context) {
	if _, ok := checkAttempt(c, "follow"); !ok {
		return
	}
	// Unreachable: the policy denies PUT and PATCH unconditionally.
	c.JSON(http.StatusForbidden, ErrForbidden)
}
