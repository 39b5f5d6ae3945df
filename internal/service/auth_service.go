package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careerconnect/internal/model"
	"careerconnect/internal/repository"
	"careerconnect/internal/utils"
)

var (
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so login responses never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("password and confirmation do not match")
	ErrInvalidRole        = errors.New("role must be jobseeker or employer")
)

// AuthService provides registration and login
type AuthService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionUtil *utils.SessionUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessionUtil *utils.SessionUtil) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionUtil: sessionUtil,
	}
}

// Register creates a new user account. It does not establish a session; the
// caller is redirected to the home page and logs in separately.
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	if req.Password != req.Confirm {
		return nil, ErrPasswordMismatch
	}
	if !model.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         req.Role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns a signed session token
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.sessionUtil.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}

	return user, token, nil
}
