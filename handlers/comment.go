package handlers

import (
	"net/http"

	"blogserver/db"
	"blogserver/models"
	"blogserver/serialize"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// fetchComment resolves a comment within its post's scope, so a valid
// comment id under the wrong post is still a 404.
func fetchComment(c *gin.Context, postID uint64) (*models.Comment, bool) {
	id, ok := paramID(c, "comment_id")
	if !ok {
		return nil, false
	}
	comment := models.Comment{}
	err := db.Instance.Preload("Author").
		Where("post_id = ?", postID).
		First(&comment, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, ErrNotFound)
		return nil, false
	}
	return &comment, true
}

func CommentList(c *gin.Context) {
	if _, ok := checkAttempt(c, "comments"); !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	comments := []models.Comment{}
	err := db.Instance.Preload("Author").
		Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	result := []serialize.CommentInfo{}
	for i := range comments {
		result = append(result, serialize.CommentToInfo(&comments[i]))
	}
	c.JSON(http.StatusOK, result)
}

// CommentCreate attaches a comment to the post from the URL. Both
// author and post are server-assigned, whatever the payload says.
func CommentCreate(c *gin.Context) {
	actor, ok := checkAttempt(c, "comments")
	if !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	w := serialize.CommentWrite{}
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	comment := models.Comment{AuthorID: actor.ID, PostID: post.ID}
	if errs := w.Apply(&comment, false); !errs.Empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	if db.Instance.Omit(clause.Associations).Create(&comment).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	comment.Author = *actor
	c.JSON(http.StatusCreated, serialize.CommentToInfo(&comment))
}

func CommentGet(c *gin.Context) {
	actor, ok := checkAttempt(c, "comments")
	if !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	comment, ok := fetchComment(c, post.ID)
	if !ok {
		return
	}
	if !checkObject(c, "comments", actor, comment.AuthorID) {
		return
	}
	c.JSON(http.StatusOK, serialize.CommentToInfo(comment))
}

func CommentUpdate(c *gin.Context) {
	actor, ok := checkAttempt(c, "comments")
	if !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	comment, ok := fetchComment(c, post.ID)
	if !ok {
		return
	}
	if !checkObject(c, "comments", actor, comment.AuthorID) {
		return
	}
	w := serialize.CommentWrite{}
	if err := c.ShouldBindJSON(&w); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	partial := c.Request.Method == http.MethodPatch
	if errs := w.Apply(comment, partial); !errs.Empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	// Server-owned fields stay pinned to the request context.
	comment.AuthorID = actor.ID
	comment.PostID = post.ID
	if db.Instance.Omit(clause.Associations).Save(comment).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	c.JSON(http.StatusOK, serialize.CommentToInfo(comment))
}

func CommentDelete(c *gin.Context) {
	actor, ok := checkAttempt(c, "comments")
	if !ok {
		return
	}
	post, ok := fetchPost(c)
	if !ok {
		return
	}
	comment, ok := fetchComment(c, post.ID)
	if !ok {
		return
	}
	if !checkObject(c, "comments", actor, comment.AuthorID) {
		return
	}
	if db.Instance.Delete(&models.Comment{}, comment.ID).Error != nil {
		c.JSON(http.StatusInternalServerError, ErrDB)
		return
	}
	c.Status(http.StatusNoContent)
}
