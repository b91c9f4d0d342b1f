package repository

import (
	"context"
	"time"

	"github.com/quotewall/backend/internal/models"
)

type Users interface {
	Create(ctx context.Context, username, email, passwordHash, role string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id, username, email string) error
	UpdateRole(ctx context.Context, id, role string) error
	Delete(ctx context.Context, id string) error
}

type Quotes interface {
	Create(ctx context.Context, body string) (models.Quote, error)
	GetByID(ctx context.Context, id string) (models.Quote, error)
	// ListWithLikes returns every quote with its like count and whether
	// userID has liked it, ordered by creation time (newest=true for
	// descending). Equal timestamps have no defined tie-break.
	ListWithLikes(ctx context.Context, userID string, newest bool) ([]models.QuoteWithLikes, error)
	UpdateBody(ctx context.Context, id, body string) error
	Delete(ctx context.Context, id string) error
}

type Likes interface {
	// Toggle removes the (user, quote) like if present, inserts it
	// otherwise, and reports the resulting liked state. Uniqueness is
	// enforced by the store's constraint, not in-process locking.
	Toggle(ctx context.Context, userID, quoteID string) (bool, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type Sessions interface {
	Create(ctx context.Context, sid string, data models.SessionData, ttl time.Duration) error
	// Get returns models.ErrNotFound for unknown or expired session ids.
	Get(ctx context.Context, sid string) (models.SessionData, error)
	// Update rewrites the payload and pushes expiry ttl into the future.
	Update(ctx context.Context, sid string, data models.SessionData, ttl time.Duration) error
	Delete(ctx context.Context, sid string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
