package handlers

import (
	"net/http"
	"strconv"

	"blogserver/db"
	"blogserver/models"
	"blogserver/serialize"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func fetchPost(c *gin.Context) (*models.Post, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}
	post := models.Post{}
	if db.Instance.Preload("Author").Preload("Group").First(&post, id).Error != nil {
		c.JSON(http.StatusNotFound, ErrNotFound)
		return nil, false
	}
	return &post, true
}

// PostList returns all posts in summary representation, newest first.
// Reads are open to everyone, including anonymous actors.
func PostList(c *gin.Context) {
	if _, ok := checkAttempt(c, "posts"); !ok {
		return
	}
	tx := db.Instance.Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC")
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		tx = tx.Offset(offset)
	}
	posts := []models.Post{}
	if tx.Find(&posts).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	result := []serialize.PostInfo{}
	for i := range posts {
		result = append(result, serialize.PostToSummary(&posts[i]))
	}
	c.JSON(http.StatusOK, result)
}

// PostCreate creates a post owned by the acting user. The author is
// always the acting identity, whatever the payload says.
func PostCreate(c *gin.Context) {
	actor, ok := checkAttempt(c, "posts")
	if !ok {
		return
	}
	w := serialize.PostWrite{}
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	post := models.Post{AuthorID: actor.ID}
	if errs := w.Apply(&post, false); !errs.Empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if db.Instance.Omit(clause.Associations).Create(&post).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	post.Author = *actor
	c.JSON(http.StatusCreated, serialize.PostToDetail(&post))
}

func PostGet(c *gin.Context) {
	actor, ok := checkAttempt(c, "posts")
	if !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	if !checkObject(c, "posts", actor, post.AuthorID) {
		return
	}
	c.JSON(http.StatusOK, serialize.PostToDetail(post))
}

// PostUpdate handles both PUT (full) and PATCH (partial).
func PostUpdate(c *gin.Context) {
	actor, ok := checkAttempt(c, "posts")
	if !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	if !checkObject(c, "posts", actor, post.AuthorID) {
		return
	}
	w := serialize.PostWrite{}
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	partial := c.Request.Method == http.MethodPatch
	if errs := w.Apply(post, partial); !errs.Empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	post.AuthorID = actor.ID // server-owned, never from the payload
	if db.Instance.Omit(clause.Associations).Save(post).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	c.JSON(http.StatusOK, serialize.PostToDetail(post))
}

// PostDelete removes the post and its comments in one transaction.
func PostDelete(c *gin.Context) {
	actor, ok := checkAttempt(c, "posts")
	if !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	if !checkObject(c, "posts", actor, post.AuthorID) {
		return
	}
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, post.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	c.Status(http.StatusNoContent)
}
