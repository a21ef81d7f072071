package handlers

import (
	"github.com/gin-gonic/gin"

	"go-blog-platform/helper"
	"go-blog-platform/middleware"
	"go-blog-platform/tokens"
)

// RegisterRoutes wires the full HTTP surface onto the router. Template
// loading and static serving stay with the caller.
func RegisterRoutes(router *gin.Engine, authHandler *AuthHandler, articleHandler *ArticleHandler, codec *tokens.Codec, h *helper.HTTPHelper) {
	auth := router.Group("/auth")
	{
		auth.GET("/login", authHandler.ShowLogin)
		auth.GET("/register", authHandler.ShowRegister)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	router.GET("/", middleware.OptionalAuth(codec), articleHandler.List)
	router.GET("/article/:id", middleware.OptionalAuth(codec), articleHandler.Show)

	authed := router.Group("/", middleware.RequireAuth(codec))
	{
		authed.GET("/my-articles", articleHandler.MyArticles)
		authed.POST("/article/:id/comment", articleHandler.AddComment)

		admin := authed.Group("/", middleware.RequireAdmin())
		{
			admin.GET("/create", articleHandler.ShowCreateForm)
			admin.POST("/create", articleHandler.Create)
			admin.GET("/edit/:id", articleHandler.ShowEditForm)
			admin.POST("/edit/:id", articleHandler.Edit)
			admin.POST("/delete/:id", articleHandler.Delete)
		}
	}

	router.NoRoute(h.Render404)
}
