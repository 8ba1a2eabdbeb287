package app

import (
	"context"

	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/rs/zerolog"
)

// ReportLoggerIntrospector logs which configuration keys the application read at startup.
type ReportLoggerIntrospector struct {
	Logger *zerolog.Logger
}

func (i ReportLoggerIntrospector) Introspect(ctx context.Context, r introspection.Report) error {
	logger := i.Logger
	if logger == nil {
		logger = zerolog.Ctx(ctx)
	}

	for _, c := range r.Configs {
		logger.Debug().
			Str("key", c.Key).
			Bool("used_default", c.UsedDefault).
			Msg("config resolved")
	}
	logger.Info().Int("configs", len(r.Configs)).Msg("introspection report ready")
	return nil
}
