package services

import (
	"log"
	"strings"
	"time"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

// CategoryAll is the literal category token that means "no filter".
const CategoryAll = "all"

type PostRequest struct {
	Title      string `json:"title" binding:"required"`
	Excerpt    string `json:"excerpt"`
	Category   string `json:"category"`
	CoverImage string `json:"coverImage"`
	Content    string `json:"content" binding:"required"`
}

type PostResponse struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Category   string    `json:"category"`
	CoverImage string    `json:"coverImage"`
	Content    string    `json:"content"`
	Likes      []uint    `json:"likes"`
	UserID     uint      `json:"userId"`
	Username   string    `json:"username"`
	UserLiked  bool      `json:"userLiked"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LikeResult is the payload every like mutation returns.
type LikeResult struct {
	PostID       uint   `json:"postId"`
	UserID       uint   `json:"userId"`
	LikeCount    int64  `json:"likeCount"`
	UserHasLiked bool   `json:"userHasLiked"`
	Action       string `json:"action"`
}

type LikesInfo struct {
	PostID       uint  `json:"postId"`
	LikeCount    int64 `json:"likeCount"`
	UserHasLiked bool  `json:"userHasLiked"`
}

type PostService struct {
	posts *repository.PostRepository
	users *repository.UserRepository
	likes *repository.LikeRepository
	log   *log.Logger
}

func NewPostService(posts *repository.PostRepository, users *repository.UserRepository, likes *repository.LikeRepository, logger *log.Logger) *PostService {
	return &PostService{posts: posts, users: users, likes: likes, log: logger}
}

func (s *PostService) Create(req PostRequest, userID uint) (*PostResponse, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		UserID:     user.ID,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Category:   req.Category,
		CoverImage: req.CoverImage,
		Content:    req.Content,
	}
	if err := s.posts.Create(&post); err != nil {
		return nil, err
	}
	s.log.Printf("post %d created by user %d", post.ID, userID)

	resp := s.toResponse(&post, user.Username, nil, false)
	return &resp, nil
}

func (s *PostService) Update(postID uint, req PostRequest, userID uint) (*PostResponse, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, apperr.NotAuthorized("user %d is not authorized to update post %d", userID, postID)
	}

	// Owner, id and created-at never change on update.
	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Category = req.Category
	post.CoverImage = req.CoverImage
	post.Content = req.Content
	if err := s.posts.Save(post); err != nil {
		return nil, err
	}
	s.log.Printf("post %d updated by user %d", postID, userID)

	return s.buildResponse(post, &userID)
}

func (s *PostService) Delete(postID, userID uint) error {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperr.NotAuthorized("user %d is not authorized to delete post %d", userID, postID)
	}
	if err := s.posts.Delete(postID); err != nil {
		return err
	}
	s.log.Printf("post %d deleted by user %d", postID, userID)
	return nil
}

func (s *PostService) Get(postID uint, viewerID *uint) (*PostResponse, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(post, viewerID)
}

// List returns all posts, or those of one category. The token "all" is a
// wildcard, case-insensitive. When viewerID is given each item carries the
// viewer's like membership.
func (s *PostService) List(category string, viewerID *uint) ([]PostResponse, error) {
	var (
		posts []models.Post
		err   error
	)
	if category == "" || strings.EqualFold(category, CategoryAll) {
		posts, err = s.posts.FindAll()
	} else {
		posts, err = s.posts.FindByCategory(category)
	}
	if err != nil {
		return nil, err
	}
	return s.buildResponses(posts, viewerID)
}

func (s *PostService) ListByUser(userID uint) ([]PostResponse, error) {
	exists, err := s.users.ExistsByID(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("user not found with id: %d", userID)
	}

	posts, err := s.posts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.buildResponses(posts, &userID)
}

// ToggleLike flips the viewer's membership in the post's liker set. Not
// idempotent: two toggles flip twice. AddLike/RemoveLike are the idempotent
// variants.
func (s *PostService) ToggleLike(postID, userID uint) (*LikeResult, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}

	liked, count, err := s.likes.Toggle(postID, userID)
	if err != nil {
		return nil, err
	}

	action := "unlike"
	if liked {
		action = "like"
	}
	s.log.Printf("like toggled on post %d by user %d: %s", postID, userID, action)

	return &LikeResult{
		PostID:       postID,
		UserID:       userID,
		LikeCount:    count,
		UserHasLiked: liked,
		Action:       action,
	}, nil
}

// AddLike adds the like only if absent; already-liked is a no-op, not an
// error, and the result always reports membership.
func (s *PostService) AddLike(postID, userID uint) (*LikeResult, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}

	count, err := s.likes.Add(postID, userID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{
		PostID:       postID,
		UserID:       userID,
		LikeCount:    count,
		UserHasLiked: true,
		Action:       "like",
	}, nil
}

// RemoveLike removes the like only if present; never-liked is a no-op.
func (s *PostService) RemoveLike(postID, userID uint) (*LikeResult, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}

	count, err := s.likes.Remove(postID, userID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{
		PostID:       postID,
		UserID:       userID,
		LikeCount:    count,
		UserHasLiked: false,
		Action:       "unlike",
	}, nil
}

// GetLikesInfo returns the like count and, when a viewer is given, their
// membership flag. No viewer means not liked, by definition.
func (s *PostService) GetLikesInfo(postID uint, viewerID *uint) (*LikesInfo, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}

	count, err := s.likes.Count(postID)
	if err != nil {
		return nil, err
	}

	info := LikesInfo{PostID: postID, LikeCount: count}
	if viewerID != nil {
		liked, err := s.likes.Exists(postID, *viewerID)
		if err != nil {
			return nil, err
		}
		info.UserHasLiked = liked
	}
	return &info, nil
}

// ListLikerIDs returns the post's liker user ids in insertion order.
func (s *PostService) ListLikerIDs(postID uint) ([]uint, error) {
	if err := s.requirePost(postID); err != nil {
		return nil, err
	}
	return s.likes.IDsByPost(postID)
}

func (s *PostService) requirePost(postID uint) error {
	exists, err := s.posts.ExistsByID(postID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("post not found with id: %d", postID)
	}
	return nil
}

func (s *PostService) toResponse(post *models.Post, username string, likes []uint, userLiked bool) PostResponse {
	if likes == nil {
		likes = make([]uint, 0)
	}
	return PostResponse{
		ID:         post.ID,
		Title:      post.Title,
		Excerpt:    post.Excerpt,
		Category:   post.Category,
		CoverImage: post.CoverImage,
		Content:    post.Content,
		Likes:      likes,
		UserID:     post.UserID,
		Username:   username,
		UserLiked:  userLiked,
		CreatedAt:  post.CreatedAt,
		UpdatedAt:  post.UpdatedAt,
	}
}

func (s *PostService) buildResponse(post *models.Post, viewerID *uint) (*PostResponse, error) {
	responses, err := s.buildResponses([]models.Post{*post}, viewerID)
	if err != nil {
		return nil, err
	}
	return &responses[0], nil
}

// buildResponses assembles post views with author names and liker ids filled
// in batch, one query per concern instead of one per post.
func (s *PostService) buildResponses(posts []models.Post, viewerID *uint) ([]PostResponse, error) {
	responses := make([]PostResponse, 0, len(posts))
	if len(posts) == 0 {
		return responses, nil
	}

	postIDs := make([]uint, len(posts))
	userIDs := make([]uint, 0, len(posts))
	seen := make(map[uint]bool)
	for i, p := range posts {
		postIDs[i] = p.ID
		if !seen[p.UserID] {
			seen[p.UserID] = true
			userIDs = append(userIDs, p.UserID)
		}
	}

	likeMap, err := s.likes.IDsByPosts(postIDs)
	if err != nil {
		return nil, err
	}

	users, err := s.users.FindByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	nameMap := make(map[uint]string, len(users))
	for _, u := range users {
		nameMap[u.ID] = u.Username
	}

	for i := range posts {
		p := &posts[i]
		likes := likeMap[p.ID]
		userLiked := false
		if viewerID != nil {
			for _, id := range likes {
				if id == *viewerID {
					userLiked = true
					break
				}
			}
		}
		responses = append(responses, s.toResponse(p, nameMap[p.UserID], likes, userLiked))
	}
	return responses, nil
}
