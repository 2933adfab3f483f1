package services

import (
	"log"

	"blogapi/internal/apperr"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Identity is the minimal projection returned on successful signin.
type Identity struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthService struct {
	users *repository.UserRepository
	log   *log.Logger
}

func NewAuthService(users *repository.UserRepository, logger *log.Logger) *AuthService {
	return &AuthService{users: users, log: logger}
}

// SignUp creates the user record verbatim. The password is stored as given,
// matching the legacy backend; see README for the security flag.
func (s *AuthService) SignUp(req SignUpRequest) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.InvalidArgument("Email already in use!")
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
	if err := s.users.Create(&user); err != nil {
		return nil, err
	}
	s.log.Printf("user %d registered", user.ID)
	return &user, nil
}

// SignIn authenticates by email and plain password equality. Unknown email
// and wrong password produce the same error so callers cannot enumerate
// accounts.
func (s *AuthService) SignIn(req SignInRequest) (*Identity, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil || user.Password != req.Password {
		if err != nil && apperr.KindOf(err) != apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.InvalidArgument("Invalid email or password")
	}

	return &Identity{ID: user.ID, Name: user.Username, Email: user.Email}, nil
}

// UsernamesByIDs resolves a batch of user ids to usernames. Unknown ids are
// skipped.
func (s *AuthService) UsernamesByIDs(ids []uint) ([]string, error) {
	users, err := s.users.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names, nil
}
