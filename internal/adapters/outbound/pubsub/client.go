package pubsub

import (
	"context"
	"fmt"
	"strings"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

// InitClient creates the Pub/Sub client the booking event publisher sends through.
// The client library connects to PUBSUB_EMULATOR_HOST when it is set.
type InitClient struct {
	Logger       *zerolog.Logger `resolve:""`
	ProjectID    string          `config:"PUBSUB_PROJECT_ID"`
	EmulatorHost string          `config:"PUBSUB_EMULATOR_HOST" default:""`
	client       *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.client == nil {
		if strings.TrimSpace(i.ProjectID) == "" {
			return ctx, fmt.Errorf("PUBSUB_PROJECT_ID is required")
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client

		event := i.Logger.Info().Str("project", i.ProjectID)
		if i.EmulatorHost != "" {
			event = event.Str("emulator", i.EmulatorHost)
		}
		event.Msg("InitClient: pubsub client ready")
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Error().Err(err).Msg("InitClient: failed to close pubsub client")
	}
}
