package repository

import (
	"testing"

	"blogapi/internal/db"
	"blogapi/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// One in-memory database, one connection. Concurrent callers queue on
	// the pool instead of each getting a fresh empty database.
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func seedUser(t *testing.T, conn *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: email, Password: "secret"}
	if err := conn.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedPost(t *testing.T, conn *gorm.DB, userID uint, title string) *models.Post {
	t.Helper()
	post := models.Post{UserID: userID, Title: title, Content: "content"}
	if err := conn.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return &post
}
