package main

import (
	"log"
	"os"
	"strings"

	"blogapi/internal/db"
	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
	"blogapi/internal/repository"
	"blogapi/internal/router"
	"blogapi/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	logger := log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)

	// Initialize Database
	conn := db.Init()

	// Initialize Gin
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS for the browser frontend
	origins := []string{"http://localhost:5173"}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Repositories
	userRepo := repository.NewUserRepository(conn)
	postRepo := repository.NewPostRepository(conn)
	likeRepo := repository.NewLikeRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)
	savedRepo := repository.NewSavedPostRepository(conn)

	// Services
	postService := services.NewPostService(postRepo, userRepo, likeRepo, logger)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo, logger)
	authService := services.NewAuthService(userRepo, logger)
	savedService := services.NewSavedPostService(savedRepo, postRepo, userRepo, postService, logger)

	// Handlers
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	authHandler := handlers.NewAuthHandler(authService)
	savedHandler := handlers.NewSavedPostHandler(savedService)

	router.RegisterRoutes(r, postHandler, commentHandler, authHandler, savedHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Blog API server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
