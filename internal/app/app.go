package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/goodfoods/samvaad/internal/adapters/inbound/http"
	"github.com/goodfoods/samvaad/internal/adapters/inbound/workers"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/config"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/llm"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/log"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/postgres"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/pubsub"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/sessions"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/time"
	"github.com/goodfoods/samvaad/internal/assistant"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"github.com/goodfoods/samvaad/internal/usecases"
)

// NewSamvaadApp creates and returns a new instance of the Samvaad reservation assistant.
func NewSamvaadApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&sessions.InitSessionStore{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&llm.InitModelEndpoint{},

			&usecases.InitRestaurantQueries{},
			&usecases.InitCheckAvailability{},
			&usecases.InitCreateBooking{},
			&usecases.InitCancelBooking{},
			&usecases.InitGetBookingDetails{},
			&usecases.InitListMenuSpecials{},

			&assistant.InitToolRegistry{},
			&assistant.InitResponseHandling{},

			&usecases.InitChat{},
			&usecases.InitResetSession{},
			&usecases.InitGetAgentStatus{},
			&usecases.InitRelayOutbox{},
			&usecases.InitPruneIdleSessions{},
		).
		Host(
			&http.SamvaadServer{},
			&workers.MessageRelay{},
			&workers.SessionJanitor{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
