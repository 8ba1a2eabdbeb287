package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"github.com/goodfoods/samvaad/internal/usecases"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// SamvaadServer is the conversational and REST API HTTP server.
type SamvaadServer struct {
	Port                     int                        `config:"HTTP_PORT" default:"8000"`
	Logger                   *zerolog.Logger            `resolve:""`
	TimeProvider             domain.CurrentTimeProvider `resolve:""`
	ChatUseCase              usecases.Chat              `resolve:""`
	ResetSessionUseCase      usecases.ResetSession      `resolve:""`
	GetAgentStatusUseCase    usecases.GetAgentStatus    `resolve:""`
	FindRestaurantsUseCase   usecases.FindRestaurants   `resolve:""`
	GetRestaurantUseCase     usecases.GetRestaurant     `resolve:""`
	CheckAvailabilityUseCase usecases.CheckAvailability `resolve:""`
	CreateBookingUseCase     usecases.CreateBooking     `resolve:""`
	GetBookingDetailsUseCase usecases.GetBookingDetails `resolve:""`
	CancelBookingUseCase     usecases.CancelBooking     `resolve:""`
	ListMenuSpecialsUseCase  usecases.ListMenuSpecials  `resolve:""`
}

// routes registers every endpoint on a new mux.
func (api SamvaadServer) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", api.ServiceInfo)
	mux.HandleFunc("GET /health", api.Health)

	mux.HandleFunc("POST /chat", api.Chat)
	mux.HandleFunc("POST /agent/reset", api.ResetAgent)
	mux.HandleFunc("GET /agent/status", api.GetAgentStatus)

	mux.HandleFunc("GET /restaurants", api.ListRestaurants)
	mux.HandleFunc("GET /restaurants/{restaurant_id}", api.GetRestaurant)
	mux.HandleFunc("GET /availability/{restaurant_id}", api.CheckAvailability)

	mux.HandleFunc("POST /bookings", api.CreateBooking)
	mux.HandleFunc("GET /bookings/{booking_id}", api.GetBooking)
	mux.HandleFunc("DELETE /bookings/{booking_id}", api.CancelBooking)

	mux.HandleFunc("GET /menu/specials", api.ListMenuSpecials)

	mux.HandleFunc("GET /introspect", api.Introspect)

	return mux
}

// Handler returns the instrumented HTTP handler.
func (api SamvaadServer) Handler() http.Handler {
	var h http.Handler = api.routes()
	h = telemetry.Middleware("samvaad-api")(h)
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	})(h)
	h = hlog.NewHandler(*api.Logger)(h)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the SamvaadServer.
func (api SamvaadServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info().Int("port", api.Port).Msg("SamvaadServer: listening")
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error().Err(err).Msg("SamvaadServer: error during shutdown")
		} else {
			api.Logger.Info().Msg("SamvaadServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the SamvaadServer is ready by performing a health check.
func (api SamvaadServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
