package auth

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper periodically deletes expired sessions.
type Sweeper struct {
	store    SessionStore
	interval time.Duration
	logger   *zap.Logger
	onSwept  func(n int64)
	now      func() time.Time
}

// NewSweeper returns a sweeper; onSwept may be nil.
func NewSweeper(store SessionStore, interval time.Duration, logger *zap.Logger, onSwept func(n int64)) *Sweeper {
	if onSwept == nil {
		onSwept = func(int64) {}
	}
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger.With(zap.String("component", "session_sweeper")),
		onSwept:  onSwept,
		now:      time.Now,
	}
}

// Run sweeps once immediately, then every interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *Sweeper) Sweep(ctx context.Context) {
	n, err := s.store.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("Failed to delete expired sessions", zap.Error(err))
		}
		return
	}
	if n > 0 {
		s.logger.Info("Deleted expired sessions", zap.Int64("count", n))
	}
	s.onSwept(n)
}
