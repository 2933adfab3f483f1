package services

import (
	"log"
	"strings"
	"time"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type CommentRequest struct {
	Message string `json:"message"`
}

type CommentResponse struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	Author    string    `json:"author"`
	PostID    uint      `json:"postId"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentService struct {
	comments *repository.CommentRepository
	posts    *repository.PostRepository
	users    *repository.UserRepository
	log      *log.Logger
}

func NewCommentService(comments *repository.CommentRepository, posts *repository.PostRepository, users *repository.UserRepository, logger *log.Logger) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, log: logger}
}

func (s *CommentService) Create(req CommentRequest, postID, userID uint) (*CommentResponse, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Message) == "" {
		return nil, apperr.InvalidArgument("message cannot be empty")
	}

	comment := models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Author:  user.Username, // snapshot, not kept in sync
		Message: req.Message,
	}
	if err := s.comments.Create(&comment); err != nil {
		return nil, err
	}
	s.log.Printf("comment %d created on post %d by user %d", comment.ID, postID, userID)

	return toCommentResponse(&comment), nil
}

func (s *CommentService) Get(commentID uint) (*CommentResponse, error) {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// Update changes the message; only the comment's author may do it.
func (s *CommentService) Update(commentID uint, req CommentRequest, userID uint) (*CommentResponse, error) {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, apperr.NotAuthorized("user %d is not authorized to update comment %d", userID, commentID)
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperr.InvalidArgument("message cannot be empty")
	}

	comment.Message = req.Message
	if err := s.comments.Save(comment); err != nil {
		return nil, err
	}
	s.log.Printf("comment %d updated by user %d", commentID, userID)

	return toCommentResponse(comment), nil
}

// Delete allows two parties: the comment's author, or the owner of the post
// the comment belongs to.
func (s *CommentService) Delete(commentID, userID uint) error {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return err
	}

	isAuthor := comment.UserID == userID
	isPostOwner := false
	if !isAuthor {
		post, err := s.posts.FindByID(comment.PostID)
		if err != nil {
			return err
		}
		isPostOwner = post.UserID == userID
	}

	if !isAuthor && !isPostOwner {
		return apperr.NotAuthorized("user %d is not authorized to delete comment %d", userID, commentID)
	}

	if err := s.comments.Delete(commentID); err != nil {
		return err
	}
	s.log.Printf("comment %d deleted by user %d", commentID, userID)
	return nil
}

func (s *CommentService) ListByPost(postID uint) ([]CommentResponse, error) {
	exists, err := s.posts.ExistsByID(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("post not found with id: %d", postID)
	}

	comments, err := s.comments.FindByPostID(postID)
	if err != nil {
		return nil, err
	}
	return toCommentResponses(comments), nil
}

func (s *CommentService) ListByUser(userID uint) ([]CommentResponse, error) {
	exists, err := s.users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user not found with id: %d", userID)
	}

	comments, err := s.comments.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return toCommentResponses(comments), nil
}

func (s *CommentService) CountByPost(postID uint) (int64, error) {
	exists, err := s.posts.ExistsByID(postID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperr.NotFound("post not found with id: %d", postID)
	}
	return s.comments.CountByPostID(postID)
}

func toCommentResponse(c *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Message:   c.Message,
		Author:    c.Author,
		PostID:    c.PostID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCommentResponses(comments []models.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, *toCommentResponse(&comments[i]))
	}
	return responses
}
