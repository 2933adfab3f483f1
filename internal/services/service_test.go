package services

import (
	"io"
	"log"
	"testing"

	"blogapi/internal/db"
	"blogapi/internal/models"
	"blogapi/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	conn     *gorm.DB
	posts    *PostService
	comments *CommentService
	auth     *AuthService
	saved    *SavedPostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	userRepo := repository.NewUserRepository(conn)
	postRepo := repository.NewPostRepository(conn)
	likeRepo := repository.NewLikeRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)
	savedRepo := repository.NewSavedPostRepository(conn)

	posts := NewPostService(postRepo, userRepo, likeRepo, logger)
	return &testEnv{
		conn:     conn,
		posts:    posts,
		comments: NewCommentService(commentRepo, postRepo, userRepo, logger),
		auth:     NewAuthService(userRepo, logger),
		saved:    NewSavedPostService(savedRepo, postRepo, userRepo, posts, logger),
	}
}

func (e *testEnv) user(t *testing.T, username, email string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: email, Password: "secret"}
	if err := e.conn.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func (e *testEnv) post(t *testing.T, userID uint, title, category string) *PostResponse {
	t.Helper()
	resp, err := e.posts.Create(PostRequest{Title: title, Category: category, Content: "content"}, userID)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return resp
}
