// Package cleanup enforces the debate retention policy in the background.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/roundtable-ai/roundtable/pkg/config"
)

// DebatePurger is the slice of the debate service the cleanup loop uses.
type DebatePurger interface {
	PurgeOldDebates(ctx context.Context, retentionDays int) (int, error)
}

// Service periodically deletes terminal debates past their retention window.
// Usage records are never touched; they are the billing audit trail. Purges
// are idempotent and safe to run from multiple replicas.
type Service struct {
	config  *config.RetentionConfig
	debates DebatePurger
	logger  *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, debates DebatePurger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		config:  cfg,
		debates: debates,
		logger:  logger,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		slog.Int("debate_retention_days", s.config.DebateRetentionDays),
		slog.Duration("interval", s.config.CleanupInterval))
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.purge(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purge(ctx)
		}
	}
}

func (s *Service) purge(ctx context.Context) {
	count, err := s.debates.PurgeOldDebates(ctx, s.config.DebateRetentionDays)
	if err != nil {
		s.logger.Error("retention: debate purge failed", slog.String("error", err.Error()))
		return
	}
	if count > 0 {
		s.logger.Info("retention: purged old debates", slog.Int("count", count))
	}
}
