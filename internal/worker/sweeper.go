// Package worker runs the background session sweeper.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/quotewall/backend/internal/metrics"
	repo "github.com/quotewall/backend/internal/repository"
)

// Sweeper deletes expired session rows on an interval. Expired sessions are
// already invisible to reads; the sweeper just keeps the table from growing.
type Sweeper struct {
	sessions repo.Sessions
	every    time.Duration
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

func NewSweeper(sessions repo.Sessions, every time.Duration) *Sweeper {
	return &Sweeper{sessions: sessions, every: every}
}

func (s *Sweeper) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTicker(s.every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := s.sessions.DeleteExpired(ctx)
				if err != nil {
					slog.Error("session sweep", "err", err)
					continue
				}
				if n > 0 {
					metrics.SessionsSweptTotal.Add(float64(n))
					slog.Debug("session sweep", "removed", n)
				}
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
