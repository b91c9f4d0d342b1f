package models

import "time"

// Quote stores its body as a single text field: one "speaker: utterance" line
// per speaker, joined by newlines. See the quote package for the transform.
type Quote struct {
	ID        string    `json:"id"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"created_at"`
}

// QuoteWithLikes is a feed row: the quote plus its computed like count and
// whether the requesting user has liked it.
type QuoteWithLikes struct {
	Quote
	Likes   int64 `json:"likes"`
	LikedBy bool  `json:"liked_by_me"`
}

type Like struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	QuoteID   string    `json:"quote_id"`
	CreatedAt time.Time `json:"created_at"`
}
