package services

import (
	"fmt"
	"time"

	"food-ordering-platform/internal/models"
	"food-ordering-platform/internal/utils"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(req *models.UserCreateRequest) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	CreateSession(userID, sessionID string, expiresAt time.Time) error
	GetUserBySession(sessionID string) (*models.User, error)
	DeleteSession(sessionID string) error
	DeleteExpiredSessions() error
}

// AuthService handles authentication-related business logic
type AuthService struct {
	userRepo UserRepository
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents a user login request
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	User      *models.User `json:"user"`
	SessionID string       `json:"session_id"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Register creates a new customer account and logs it in
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	createReq := &models.UserCreateRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.RoleCustomer,
	}

	if err := createReq.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	createReq.Password = hashedPassword
	user, err := s.userRepo.Create(createReq)
	if err != nil {
		return nil, err
	}

	sessionID, expiresAt, err := s.createSession(user.ID, false)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:      user,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}, nil
}

// Login authenticates a user and creates a session
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("email is required: %w", models.ErrInvalidInput)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required: %w", models.ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		// Do not reveal whether the email exists.
		return nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)
	}

	valid, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)
	}

	sessionID, expiresAt, err := s.createSession(user.ID, req.RememberMe)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:      user,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateSession validates a session and returns the associated user
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID is required: %w", models.ErrUnauthorized)
	}

	user, err := s.userRepo.GetUserBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session: %w", models.ErrUnauthorized)
	}

	return user, nil
}

// Logout invalidates a user session
func (s *AuthService) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.userRepo.DeleteSession(sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes expired sessions from the database
func (s *AuthService) CleanupExpiredSessions() error {
	if err := s.userRepo.DeleteExpiredSessions(); err != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	return nil
}

func (s *AuthService) createSession(userID string, rememberMe bool) (string, time.Time, error) {
	sessionID, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session ID: %w", err)
	}

	var expiresAt time.Time
	if rememberMe {
		expiresAt = time.Now().Add(30 * 24 * time.Hour)
	} else {
		expiresAt = time.Now().Add(24 * time.Hour)
	}

	if err := s.userRepo.CreateSession(userID, sessionID, expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store session: %w", err)
	}

	return sessionID, expiresAt, nil
}
