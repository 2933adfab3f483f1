package router

import (
	"blogapi/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API surface. Every route below /api/posts shares
// the :id wildcard name because gin allows one name per tree position; the
// category listing reads it as a category token, everything else as a post
// id.
func RegisterRoutes(r *gin.Engine, postHandler *handlers.PostHandler, commentHandler *handlers.CommentHandler, authHandler *handlers.AuthHandler, savedHandler *handlers.SavedPostHandler) {
	api := r.Group("/api")

	// 认证 (Auth Routes)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
		auth.GET("/getUserNames", authHandler.GetUserNames)
	}

	// 文章 (Post Routes)
	posts := api.Group("/posts")
	{
		posts.POST("", postHandler.Create)                 // 创建文章
		posts.GET("", postHandler.List)                    // 所有文章
		posts.GET("/user/:userId", postHandler.ListByUser) // 某用户的文章
		posts.GET("/:id", postHandler.ListByCategory)      // 按分类, "all" 为全部
		posts.PUT("/:id", postHandler.Update)              // 更新文章
		posts.DELETE("/:id", postHandler.Delete)           // 删除文章

		posts.POST("/:id/toggle-like", postHandler.ToggleLike) // 点赞/取消点赞
		posts.POST("/:id/like", postHandler.AddLike)           // 点赞 (幂等)
		posts.POST("/:id/unlike", postHandler.RemoveLike)      // 取消点赞 (幂等)
		posts.GET("/:id/likes", postHandler.ListLikes)         // 点赞用户ID列表
		posts.GET("/:id/likes/info", postHandler.LikesInfo)    // 点赞数与状态
		posts.POST("/:id/save", savedHandler.Toggle)           // 收藏/取消收藏

		posts.POST("/:id/comments", commentHandler.Create)     // 发表评论
		posts.GET("/:id/comments", commentHandler.ListByPost)  // 文章评论列表
		posts.GET("/:id/comments/count", commentHandler.Count) // 评论数
	}

	// 评论 (Comment Routes)
	comments := api.Group("/comments")
	{
		comments.GET("/:commentId", commentHandler.Get)
		comments.PUT("/:commentId", commentHandler.Update)
		comments.DELETE("/:commentId", commentHandler.Delete)
	}

	// 用户 (User Routes)
	users := api.Group("/users")
	{
		users.GET("/:userId/comments", commentHandler.ListByUser) // 某用户的评论
		users.GET("/:userId/saved", savedHandler.ListByUser)      // 某用户的收藏
	}
}
