package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/goodfoods/samvaad/internal/app"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// A local .env is optional; real deployments inject the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Fatal().Err(err).Msg("failed to load .env file")
	}

	err := app.NewSamvaadApp().
		Introspect(&app.ReportLoggerIntrospector{Logger: &logger}).
		Run()
	if err != nil {
		logger.Fatal().Err(err).Msg("samvaad stopped")
	}
}
