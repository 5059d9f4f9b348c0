package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"yelpcamp/internal/domain"
)

// UserService wraps the username/password strategy: registration with a salted
// bcrypt hash, and credential checks for session login.
type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a user with a unique email and username. The email is
// stored lowercased.
func (s *UserService) Register(ctx context.Context, email, username, password string) (domain.User, error) {
	if err := ValidateRegistration(email, username, password); err != nil {
		return domain.User{}, err
	}
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailTaken
	} else if err != domain.ErrNotFound {
		return domain.User{}, fmt.Errorf("check email: %w", err)
	}
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, domain.ErrUsernameTaken
	} else if err != domain.ErrNotFound {
		return domain.User{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	id, err := s.users.InsertUser(ctx, u)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	u.ID = id
	return u, nil
}

// Authenticate returns the user for a valid username/password pair. Unknown
// usernames and wrong passwords are the same ErrInvalidCredentials so the
// login form is not a username oracle.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err == domain.ErrNotFound {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return u, nil
}

// Get is the current-user lookup behind the session subject.
func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (domain.User, error) {
	return s.users.GetUser(ctx, id)
}
