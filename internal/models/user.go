package models

import (
	"strings"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate only checks presence; format and strength checks are out of scope.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Username) == "" {
		return ErrValidation("username required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrValidation("email required")
	}
	if u.Role == "" {
		u.Role = RoleUser.String()
	}
	return nil
}
