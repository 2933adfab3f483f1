package services

import (
	"log"
	"time"

	"blogapi/internal/apperr"
	"blogapi/internal/repository"
)

type SavedPostResult struct {
	PostID     uint  `json:"postId"`
	UserID     uint  `json:"userId"`
	Saved      bool  `json:"saved"`
	SavedCount int64 `json:"savedCount"`
}

type SavedPostResponse struct {
	ID        uint          `json:"id"`
	UserID    uint          `json:"userId"`
	PostID    uint          `json:"postId"`
	CreatedAt time.Time     `json:"createdAt"`
	Post      *PostResponse `json:"post"`
}

type SavedPostService struct {
	saved *repository.SavedPostRepository
	posts *repository.PostRepository
	users *repository.UserRepository
	views *PostService
	log   *log.Logger
}

func NewSavedPostService(saved *repository.SavedPostRepository, posts *repository.PostRepository, users *repository.UserRepository, views *PostService, logger *log.Logger) *SavedPostService {
	return &SavedPostService{saved: saved, posts: posts, users: users, views: views, log: logger}
}

// Toggle saves or unsaves the post for the user.
func (s *SavedPostService) Toggle(postID, userID uint) (*SavedPostResult, error) {
	exists, err := s.posts.ExistsByID(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("post not found with id: %d", postID)
	}
	userExists, err := s.users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !userExists {
		return nil, apperr.NotFound("user not found with id: %d", userID)
	}

	saved, count, err := s.saved.Toggle(postID, userID)
	if err != nil {
		return nil, err
	}
	s.log.Printf("saved state of post %d toggled by user %d: %v", postID, userID, saved)

	return &SavedPostResult{PostID: postID, UserID: userID, Saved: saved, SavedCount: count}, nil
}

// ListByUser returns the user's saved posts newest first, each carrying its
// post view annotated for that user.
func (s *SavedPostService) ListByUser(userID uint) ([]SavedPostResponse, error) {
	exists, err := s.users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user not found with id: %d", userID)
	}

	entries, err := s.saved.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]SavedPostResponse, 0, len(entries))
	for _, e := range entries {
		view, err := s.views.Get(e.PostID, &userID)
		if err != nil {
			// Post removed between queries; skip the stale entry.
			if apperr.KindOf(err) == apperr.KindNotFound {
				continue
			}
			return nil, err
		}
		responses = append(responses, SavedPostResponse{
			ID:        e.ID,
			UserID:    e.UserID,
			PostID:    e.PostID,
			CreatedAt: e.CreatedAt,
			Post:      view,
		})
	}
	return responses, nil
}
