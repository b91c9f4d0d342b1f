package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "qw_session"

// CookieManager signs the server-side session id into the session cookie and
// verifies it on the way back in. The cookie carries only the id, wrapped in
// an HS256 token so it cannot be guessed or tampered with; the session state
// itself lives in the store.
type CookieManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewCookieManager(secret string, ttl time.Duration, secure bool) *CookieManager {
	return &CookieManager{secret: []byte(secret), ttl: ttl, secure: secure}
}

type sidClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

func (m *CookieManager) Sign(sid string) (string, error) {
	now := time.Now()
	claims := sidClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *CookieManager) Verify(token string) (string, error) {
	claims := &sidClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil || claims.SID == "" {
		return "", errors.New("invalid session token")
	}
	return claims.SID, nil
}

// SetCookie writes the signed session cookie on the response.
func (m *CookieManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func (m *CookieManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
