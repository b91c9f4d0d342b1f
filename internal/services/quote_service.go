package services

import (
	"context"

	"github.com/quotewall/backend/internal/metrics"
	"github.com/quotewall/backend/internal/models"
	"github.com/quotewall/backend/internal/quote"
	repo "github.com/quotewall/backend/internal/repository"
)

type QuoteSort string

const (
	SortNewest QuoteSort = "newest"
	SortOldest QuoteSort = "oldest"
)

type QuoteService struct {
	quotes repo.Quotes
	likes  repo.Likes
}

func NewQuoteService(quotes repo.Quotes, likes repo.Likes) *QuoteService {
	return &QuoteService{quotes: quotes, likes: likes}
}

// List returns the feed for userID. Unknown sort values fall back to newest.
// searchName filters post-fetch on parsed speaker names.
func (s *QuoteService) List(ctx context.Context, userID string, sort QuoteSort, searchName string) ([]models.QuoteWithLikes, error) {
	all, err := s.quotes.ListWithLikes(ctx, userID, sort != SortOldest)
	if err != nil {
		return nil, err
	}
	if searchName == "" {
		return all, nil
	}
	out := make([]models.QuoteWithLikes, 0, len(all))
	for _, q := range all {
		if quote.MatchesSpeaker(q.Quote.Quote, searchName) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *QuoteService) Add(ctx context.Context, names, texts []string) (models.Quote, error) {
	body, err := quote.Compose(names, texts)
	if err != nil {
		return models.Quote{}, models.ErrValidation(err.Error())
	}
	if body == "" {
		return models.Quote{}, models.ErrValidation("quote required")
	}
	q, err := s.quotes.Create(ctx, body)
	if err != nil {
		return models.Quote{}, err
	}
	metrics.QuotesCreatedTotal.Inc()
	return q, nil
}

// GetForEdit fetches a quote with its body parsed back into (speaker, text)
// pairs for form rendering.
func (s *QuoteService) GetForEdit(ctx context.Context, id string) (models.Quote, []quote.Line, error) {
	q, err := s.quotes.GetByID(ctx, id)
	if err != nil {
		return models.Quote{}, nil, err
	}
	return q, quote.Parse(q.Quote), nil
}

// Update replaces the stored body wholesale.
func (s *QuoteService) Update(ctx context.Context, id string, names, texts []string) error {
	body, err := quote.Compose(names, texts)
	if err != nil {
		return models.ErrValidation(err.Error())
	}
	if body == "" {
		return models.ErrValidation("quote required")
	}
	return s.quotes.UpdateBody(ctx, id, body)
}

func (s *QuoteService) Delete(ctx context.Context, id string) error {
	return s.quotes.Delete(ctx, id)
}

// ToggleLike flips the (user, quote) like and reports the resulting state.
func (s *QuoteService) ToggleLike(ctx context.Context, quoteID, userID string) (bool, error) {
	if _, err := s.quotes.GetByID(ctx, quoteID); err != nil {
		return false, err
	}
	liked, err := s.likes.Toggle(ctx, userID, quoteID)
	if err != nil {
		return false, err
	}
	if liked {
		metrics.LikeTogglesTotal.WithLabelValues("like").Inc()
	} else {
		metrics.LikeTogglesTotal.WithLabelValues("unlike").Inc()
	}
	return liked, nil
}
