package services

import (
	"context"
	"strings"

	"github.com/quotewall/backend/internal/models"
	repo "github.com/quotewall/backend/internal/repository"
)

// AdminService covers the admin-only user management operations. Role checks
// happen at the gate; these methods assume an admin caller.
type AdminService struct {
	users repo.Users
	likes repo.Likes
}

func NewAdminService(users repo.Users, likes repo.Likes) *AdminService {
	return &AdminService{users: users, likes: likes}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// SetRole only accepts the three known tiers. A live session issued before
// the change keeps its old role until the user logs in again.
func (s *AdminService) SetRole(ctx context.Context, userID, role string) error {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return models.ErrValidation(err.Error())
	}
	return s.users.UpdateRole(ctx, userID, parsed.String())
}

// DeleteUser removes a user and their likes. Self-deletion is refused so an
// installation cannot lock itself out of its last admin.
func (s *AdminService) DeleteUser(ctx context.Context, userID, actingUserID string) error {
	if userID == actingUserID {
		return models.ErrSelfDeletion
	}
	if err := s.likes.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	return s.users.Delete(ctx, userID)
}

func (s *AdminService) UpdateProfile(ctx context.Context, userID, username, email string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return models.ErrValidation("username required")
	}
	if email == "" {
		return models.ErrValidation("email required")
	}
	return s.users.UpdateProfile(ctx, userID, username, email)
}
