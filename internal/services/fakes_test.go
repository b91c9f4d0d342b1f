package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/quotewall/backend/internal/models"
)

// In-memory repository fakes. They enforce the same uniqueness rules the
// real store's constraints do, so the services can be tested without a
// database.

type fakeUsers struct {
	seq   int
	users []models.User
}

func (f *fakeUsers) nextID() string {
	f.seq++
	return "user-" + strconv.Itoa(f.seq)
}

func (f *fakeUsers) Create(_ context.Context, username, email, hash, role string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return models.User{}, models.ErrDuplicateEmail
		}
	}
	u := models.User{
		ID:           f.nextID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.users = append(f.users, u)
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, len(f.users))
	copy(out, f.users)
	return out, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id, username, email string) error {
	for _, u := range f.users {
		if u.ID != id && u.Email == email {
			return models.ErrDuplicateEmail
		}
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Username = username
			f.users[i].Email = email
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeUsers) UpdateRole(_ context.Context, id, role string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeUsers) Delete(_ context.Context, id string) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeLikes struct {
	// quoteID -> set of userIDs
	byQuote map[string]map[string]bool
}

func newFakeLikes() *fakeLikes {
	return &fakeLikes{byQuote: map[string]map[string]bool{}}
}

func (f *fakeLikes) Toggle(_ context.Context, userID, quoteID string) (bool, error) {
	set := f.byQuote[quoteID]
	if set == nil {
		set = map[string]bool{}
		f.byQuote[quoteID] = set
	}
	if set[userID] {
		delete(set, userID)
		return false, nil
	}
	set[userID] = true
	return true, nil
}

func (f *fakeLikes) DeleteByUser(_ context.Context, userID string) error {
	for _, set := range f.byQuote {
		delete(set, userID)
	}
	return nil
}

func (f *fakeLikes) count(quoteID string) int64 {
	return int64(len(f.byQuote[quoteID]))
}

type fakeQuotes struct {
	seq    int
	clock  time.Time
	quotes []models.Quote
	likes  *fakeLikes
}

func newFakeQuotes(likes *fakeLikes) *fakeQuotes {
	return &fakeQuotes{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), likes: likes}
}

func (f *fakeQuotes) Create(_ context.Context, body string) (models.Quote, error) {
	f.seq++
	f.clock = f.clock.Add(time.Second)
	q := models.Quote{
		ID:        "quote-" + strconv.Itoa(f.seq),
		Quote:     body,
		CreatedAt: f.clock,
	}
	f.quotes = append(f.quotes, q)
	return q, nil
}

func (f *fakeQuotes) GetByID(_ context.Context, id string) (models.Quote, error) {
	for _, q := range f.quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return models.Quote{}, models.ErrNotFound
}

func (f *fakeQuotes) ListWithLikes(_ context.Context, userID string, newest bool) ([]models.QuoteWithLikes, error) {
	out := make([]models.QuoteWithLikes, 0, len(f.quotes))
	for _, q := range f.quotes {
		out = append(out, models.QuoteWithLikes{
			Quote:   q,
			Likes:   f.likes.count(q.ID),
			LikedBy: f.likes.byQuote[q.ID][userID],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if newest {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeQuotes) UpdateBody(_ context.Context, id, body string) error {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			f.quotes[i].Quote = body
			return nil
		}
	}
	return models.ErrNotFound
}

func (f *fakeQuotes) Delete(_ context.Context, id string) error {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			f.quotes = append(f.quotes[:i], f.quotes[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeSessions struct {
	sessions map[string]models.SessionData
	expires  map[string]time.Time
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		sessions: map[string]models.SessionData{},
		expires:  map[string]time.Time{},
	}
}

func (f *fakeSessions) Create(_ context.Context, sid string, data models.SessionData, ttl time.Duration) error {
	f.sessions[sid] = data
	f.expires[sid] = time.Now().Add(ttl)
	return nil
}

func (f *fakeSessions) Get(_ context.Context, sid string) (models.SessionData, error) {
	data, ok := f.sessions[sid]
	if !ok || time.Now().After(f.expires[sid]) {
		return models.SessionData{}, models.ErrNotFound
	}
	return data, nil
}

func (f *fakeSessions) Update(_ context.Context, sid string, data models.SessionData, ttl time.Duration) error {
	if _, ok := f.sessions[sid]; !ok {
		return models.ErrNotFound
	}
	f.sessions[sid] = data
	f.expires[sid] = time.Now().Add(ttl)
	return nil
}

func (f *fakeSessions) Delete(_ context.Context, sid string) error {
	delete(f.sessions, sid)
	delete(f.expires, sid)
	return nil
}

func (f *fakeSessions) DeleteExpired(_ context.Context) (int64, error) {
	var n int64
	for sid, exp := range f.expires {
		if time.Now().After(exp) {
			delete(f.sessions, sid)
			delete(f.expires, sid)
			n++
		}
	}
	return n, nil
}

// quoteBodies flattens a feed result for order assertions.
func quoteBodies(list []models.QuoteWithLikes) string {
	parts := make([]string, len(list))
	for i, q := range list {
		parts[i] = q.Quote.Quote
	}
	return strings.Join(parts, " | ")
}
