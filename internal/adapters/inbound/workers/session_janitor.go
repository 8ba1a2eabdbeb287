package workers

import (
	"context"
	"time"

	"github.com/goodfoods/samvaad/internal/usecases"
	"github.com/rs/zerolog"
)

// SessionJanitor periodically deletes chat sessions that have been idle longer than the session TTL.
type SessionJanitor struct {
	Pruner              usecases.PruneIdleSessions `resolve:""`
	Logger              *zerolog.Logger            `resolve:""`
	Interval            time.Duration              `config:"SESSION_JANITOR_INTERVAL" default:"5m"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic pruning.
func (sj SessionJanitor) Run(ctx context.Context) error {
	sj.Logger.Info().Dur("interval", sj.Interval).Msg("SessionJanitor: running...")
	ticker := time.NewTicker(sj.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			deleted, err := sj.Pruner.Execute(ctx)
			if err != nil {
				sj.Logger.Error().Err(err).Msg("SessionJanitor: error pruning sessions")
			} else if deleted > 0 {
				sj.Logger.Info().Int64("deleted", deleted).Msg("SessionJanitor: pruned idle sessions")
			}
			signalExecution(ctx, sj.workerExecutionChan)
		case <-ctx.Done():
			sj.Logger.Info().Msg("SessionJanitor: stopping...")
			return nil
		}
	}
}
