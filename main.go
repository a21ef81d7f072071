package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"go-blog-platform/config"
	"go-blog-platform/handlers"
	"go-blog-platform/helper"
	"go-blog-platform/repositories"
	"go-blog-platform/services"
	"go-blog-platform/storage"
	"go-blog-platform/tokens"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	if err := storage.EnsureDirs(cfg.PublicDir, cfg.UploadsDir); err != nil {
		log.Fatal("Failed to create directories: ", err)
	}

	db := config.InitDB(cfg)

	codec := tokens.NewCodec(cfg.JWTSecret, cfg.JWTExpiration)
	uploads := storage.NewUploads(cfg.UploadsDir)
	httpHelper := helper.NewHTTPHelper()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, codec)
	articleService := services.NewArticleService(articleRepo)
	commentService := services.NewCommentService(commentRepo, articleRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, codec, httpHelper)
	articleHandler := handlers.NewArticleHandler(articleService, commentService, uploads, httpHelper)

	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/uploads", cfg.UploadsDir)
	router.Static("/css", cfg.PublicDir+"/css")
	router.Static("/js", cfg.PublicDir+"/js")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	handlers.RegisterRoutes(router, authHandler, articleHandler, codec, httpHelper)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
