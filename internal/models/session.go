package models

// SessionData is the payload stored server-side under a session id. The
// cookie only carries the id; everything the gates need lives here.
type SessionData struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
