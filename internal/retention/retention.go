// Package retention prunes old contact messages on a cron schedule.
package retention

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

var ErrInvalidSchedule = errors.New("retention: invalid schedule")

// Config controls how long contact messages are kept.
// A zero MaxAge disables pruning.
type Config struct {
	MaxAge   time.Duration `env:"CONTACT_RETENTION" envDefault:"8760h"`
	Schedule string        `env:"CONTACT_RETENTION_SCHEDULE" envDefault:"@daily"`
}

func (c Config) Enabled() bool {
	return c.MaxAge > 0
}

// Pruner is the slice of the store the job needs.
type Pruner interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Job struct {
	cfg    Config
	store  Pruner
	logger *slog.Logger
	now    func() time.Time
	cron   *cron.Cron
}

func New(cfg Config, store Pruner, logger *slog.Logger) (*Job, error) {
	j := &Job{
		cfg:    cfg,
		store:  store,
		logger: logger,
		now:    time.Now,
		cron:   cron.New(),
	}

	if _, err := j.cron.AddFunc(cfg.Schedule, func() { _, _ = j.Prune(context.Background()) }); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSchedule, cfg.Schedule, err)
	}
	return j, nil
}

// Prune deletes every message older than MaxAge.
func (j *Job) Prune(ctx context.Context) (int64, error) {
	cutoff := j.now().Add(-j.cfg.MaxAge)
	n, err := j.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "contact retention cleanup failed", slog.Any("error", err))
		return 0, err
	}
	if n > 0 {
		j.logger.InfoContext(ctx, "contact retention cleanup",
			slog.Int64("deleted", n),
			slog.Time("cutoff", cutoff),
		)
	}
	return n, nil
}

// Start runs one prune immediately, then follows the schedule.
func (j *Job) Start(ctx context.Context) {
	_, _ = j.Prune(ctx)
	j.cron.Start()
}

// Stop waits for a running prune to finish or ctx to expire.
func (j *Job) Stop(ctx context.Context) error {
	select {
	case <-j.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
