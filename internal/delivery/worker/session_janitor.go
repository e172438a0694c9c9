package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lifeos/config"
	"lifeos/internal/delivery"
	"lifeos/internal/usecase"

	"go.uber.org/fx"
)

const defaultPurgeInterval = time.Hour

type sessionJanitor struct {
	authUC   usecase.AuthUsecase
	interval time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	done     chan struct{}
}

// SessionJanitorParams holds dependencies for the session janitor
type SessionJanitorParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

// NewSessionJanitor creates a background delivery that periodically deletes
// expired refresh sessions.
func NewSessionJanitor(params SessionJanitorParams) delivery.Delivery {
	interval := defaultPurgeInterval
	if params.Cfg.Auth != nil && params.Cfg.Auth.SessionPurgeInterval > 0 {
		interval = params.Cfg.Auth.SessionPurgeInterval
	}

	j := &sessionJanitor{
		authUC:   params.AuthUC,
		interval: interval,
		logger:   params.Logger,
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: j.stop,
	})

	return j
}

// Serve runs until ctx is cancelled or the application stops.
func (j *sessionJanitor) Serve(ctx context.Context) error {
	j.logger.Info("Starting session janitor", slog.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.done:
			return nil
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *sessionJanitor) purge(ctx context.Context) {
	removed, err := j.authUC.PurgeExpiredSessions(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to purge expired sessions", slog.Any("error", err))

		return
	}
	if removed > 0 {
		j.logger.InfoContext(ctx, "Purged expired sessions", slog.Int64("removed", removed))
	}
}

func (j *sessionJanitor) stop(_ context.Context) error {
	j.stopOnce.Do(func() {
		j.logger.Info("Stopping session janitor")
		close(j.done)
	})

	return nil
}
