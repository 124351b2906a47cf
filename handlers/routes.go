package handlers

import (
	"blogserver/auth"

	"github.com/gin-gonic/gin"
)

// Register wires the versioned API surface. Groups expose no write
// routes at all; Follow registers PUT/PATCH only to reject them.
func Register(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.Use(auth.Middleware)

	v1.POST("/api-token-auth/", ObtainAuthToken)
	v1.POST("/users/", UserCreate)

	v1.GET("/posts/", PostList)
	v1.POST("/posts/", PostCreate)
	v1.GET("/posts/:id/", PostGet)
	v1.PUT("/posts/:id/", PostUpdate)
	v1.PATCH("/posts/:id/", PostUpdate)
	v1.DELETE("/posts/:id/", PostDelete)

	v1.GET("/groups/", GroupList)
	v1.GET("/groups/:id/", GroupGet)

	v1.GET("/posts/:id/comments/", CommentList)
	v1.POST("/posts/:id/comments/", CommentCreate)
	v1.GET("/posts/:id/comments/:comment_id/", CommentGet)
	v1.PUT("/posts/:id/comments/:comment_id/", CommentUpdate)
	v1.PATCH("/posts/:id/comments/:comment_id/", CommentUpdate)
	v1.DELETE("/posts/:id/comments/:comment_id/", CommentDelete)

	v1.GET("/follow/", FollowList)
	v1.POST("/follow/", FollowCreate)
	v1.DELETE("/follow/:id/", FollowDelete)
	v1.PUT("/follow/:id/", FollowUpdate)
	v1.PATCH("/follow/:id/", FollowUpdate)
}
