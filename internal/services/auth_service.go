package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quotewall/backend/internal/auth"
	"github.com/quotewall/backend/internal/metrics"
	"github.com/quotewall/backend/internal/models"
	repo "github.com/quotewall/backend/internal/repository"
)

type AuthService struct {
	users    repo.Users
	sessions repo.Sessions
	ttl      time.Duration
}

func NewAuthService(users repo.Users, sessions repo.Sessions, sessionTTL time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, ttl: sessionTTL}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	u := models.User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Role:     models.RoleUser.String(),
	}
	if err := u.Validate(); err != nil {
		return models.User{}, err
	}
	if password == "" {
		return models.User{}, models.ErrValidation("password required")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, u.Username, u.Email, hash, u.Role)
}

// Login verifies the credentials and establishes a session. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.SessionData, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", models.SessionData{}, models.ErrInvalidCredentials
		}
		return "", models.SessionData{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return "", models.SessionData{}, models.ErrInvalidCredentials
	}

	sid := uuid.NewString()
	data := models.SessionData{UserID: u.ID, Username: u.Username, Role: u.Role}
	if err := s.sessions.Create(ctx, sid, data, s.ttl); err != nil {
		return "", models.SessionData{}, err
	}
	metrics.LoginsTotal.Inc()
	return sid, data, nil
}

// Logout destroys the session unconditionally; an unknown sid is not an error.
func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sid)
}
