package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/quotewall/backend/internal/auth"
	"github.com/quotewall/backend/internal/models"
	repo "github.com/quotewall/backend/internal/repository"
)

// SessionMiddleware resolves the session cookie into a UserCtx on every
// request. Requests without a valid session proceed as anonymous; the tier
// gates decide what anonymous may do.
type SessionMiddleware struct {
	cookies  *auth.CookieManager
	sessions repo.Sessions
	ttl      time.Duration
}

func NewSessionMiddleware(cookies *auth.CookieManager, sessions repo.Sessions, ttl time.Duration) *SessionMiddleware {
	return &SessionMiddleware{cookies: cookies, sessions: sessions, ttl: ttl}
}

func (m *SessionMiddleware) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(auth.CookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		sid, err := m.cookies.Verify(c.Value)
		if err != nil {
			m.cookies.ClearCookie(w)
			next.ServeHTTP(w, r)
			return
		}
		data, err := m.sessions.Get(r.Context(), sid)
		if err != nil {
			// expired or destroyed server-side
			m.cookies.ClearCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		role, err := models.ParseRole(data.Role)
		if err != nil {
			role = models.RoleUser
		}

		// sliding expiry: every authenticated request rewrites the session
		if err := m.sessions.Update(r.Context(), sid, data, m.ttl); err != nil {
			slog.Debug("session touch", "err", err)
		}

		ctx := WithUser(r.Context(), UserCtx{
			SID:      sid,
			UserID:   data.UserID,
			Username: data.Username,
			Role:     role,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
