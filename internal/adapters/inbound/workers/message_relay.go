package workers

import (
	"context"
	"time"

	"github.com/goodfoods/samvaad/internal/usecases"
	"github.com/rs/zerolog"
)

// MessageRelay publishes pending booking events from the outbox. Consecutive failures,
// e.g. while Pub/Sub is unreachable, double the wait between batches up to MaxBackoff.
type MessageRelay struct {
	Relay               usecases.RelayOutbox `resolve:""`
	Logger              *zerolog.Logger      `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	MaxBackoff          time.Duration        `config:"OUTBOX_RELAY_MAX_BACKOFF" default:"30s"`
	workerExecutionChan chan struct{}
}

// Run relays outbox batches until ctx is cancelled.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Info().Dur("interval", mr.Interval).Msg("MessageRelay: running...")
	timer := time.NewTimer(mr.Interval)
	defer timer.Stop()

	failures := 0
	for {
		select {
		case <-timer.C:
			wait := mr.Interval
			if err := mr.Relay.Execute(ctx); err != nil {
				failures++
				wait = mr.backoff(failures)
				mr.Logger.Error().Err(err).
					Int("failures", failures).
					Dur("retry_in", wait).
					Msg("MessageRelay: error relaying outbox batch")
			} else {
				failures = 0
			}
			signalExecution(ctx, mr.workerExecutionChan)
			timer.Reset(wait)
		case <-ctx.Done():
			mr.Logger.Info().Msg("MessageRelay: stopping...")
			return nil
		}
	}
}

func (mr MessageRelay) backoff(failures int) time.Duration {
	wait := mr.Interval
	for range failures {
		wait *= 2
		if mr.MaxBackoff > 0 && wait >= mr.MaxBackoff {
			return mr.MaxBackoff
		}
	}
	return wait
}

// signalExecution notifies tests that one iteration finished.
func signalExecution(ctx context.Context, ch chan struct{}) {
	if ch == nil {
		return
	}
	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
	}
}
