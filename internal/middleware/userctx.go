package middleware

import (
	"context"

	"github.com/quotewall/backend/internal/models"
)

type userKey struct{}

// UserCtx is the request-scoped identity resolved from the session cookie.
// The zero value is an anonymous request.
type UserCtx struct {
	SID      string
	UserID   string
	Username string
	Role     models.Role
}

func WithUser(ctx context.Context, u UserCtx) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

func FromCtx(ctx context.Context) UserCtx {
	if v := ctx.Value(userKey{}); v != nil {
		if u, ok := v.(UserCtx); ok {
			return u
		}
	}
	return UserCtx{}
}
