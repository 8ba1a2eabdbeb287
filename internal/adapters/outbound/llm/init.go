// Package llm selects and registers the configured model endpoint.
package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/gemini"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/modelrunner"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/scripted"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

var defaultModels = map[string]string{
	modelrunner.Provider: "meta/llama-3.1-8b-instruct-maas",
	gemini.Provider:      "gemini-2.0-flash",
	scripted.Provider:    "samvaad-dev-rules",
}

// InitModelEndpoint registers the domain.ModelEndpoint chosen by LLM_PROVIDER.
type InitModelEndpoint struct {
	Logger       *zerolog.Logger            `resolve:""`
	HttpClient   *http.Client               `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Provider     string                     `config:"LLM_PROVIDER" default:"openai"`
	Model        string                     `config:"LLM_MODEL" default:""`
	BaseURL      string                     `config:"LLM_BASE_URL" default:""`
	APIKey       string                     `config:"LLM_API_KEY" default:""`
	UseGoogleADC bool                       `config:"LLM_USE_GOOGLE_ADC" default:"false"`
	Project      string                     `config:"GOOGLE_CLOUD_PROJECT_ID" default:""`
	Location     string                     `config:"GOOGLE_CLOUD_LOCATION" default:"us-central1"`

	// tokenSource overrides Google ADC lookups in tests.
	tokenSource func(ctx context.Context) (oauth2.TokenSource, error)
}

// Initialize builds the endpoint and registers it with its description.
func (i InitModelEndpoint) Initialize(ctx context.Context) (context.Context, error) {
	model := i.Model
	if model == "" {
		model = defaultModels[i.Provider]
	}

	endpoint, err := i.newEndpoint(ctx)
	if err != nil {
		return ctx, err
	}

	i.Logger.Info().
		Str("provider", i.Provider).
		Str("model", model).
		Msg("model endpoint configured")

	depend.Register(endpoint)
	depend.Register(domain.ModelEndpointInfo{Provider: i.Provider, Model: model})
	return ctx, nil
}

func (i InitModelEndpoint) newEndpoint(ctx context.Context) (domain.ModelEndpoint, error) {
	switch i.Provider {
	case modelrunner.Provider:
		baseURL := i.BaseURL
		if baseURL == "" {
			if i.Project == "" {
				return nil, fmt.Errorf("LLM_BASE_URL or GOOGLE_CLOUD_PROJECT_ID is required for provider %q", i.Provider)
			}
			baseURL = modelrunner.VertexBaseURL(i.Project, i.Location)
		}
		ts, err := i.openAITokenSource(ctx)
		if err != nil {
			return nil, err
		}
		return modelrunner.NewChatCompletionsEndpoint(modelrunner.NewClient(baseURL, ts, i.HttpClient)), nil

	case gemini.Provider:
		endpoint, err := gemini.New(ctx, gemini.Config{
			APIKey:     i.APIKey,
			Project:    i.Project,
			Location:   i.Location,
			BaseURL:    i.BaseURL,
			HTTPClient: i.HttpClient,
		})
		if err != nil {
			return nil, err
		}
		return endpoint, nil

	case scripted.Provider:
		return scripted.New(i.TimeProvider), nil
	}
	return nil, fmt.Errorf("unknown LLM_PROVIDER %q", i.Provider)
}

func (i InitModelEndpoint) openAITokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if !i.UseGoogleADC {
		return modelrunner.StaticToken(i.APIKey), nil
	}
	find := i.tokenSource
	if find == nil {
		find = func(ctx context.Context) (oauth2.TokenSource, error) {
			return google.DefaultTokenSource(ctx, cloudPlatformScope)
		}
	}
	ts, err := find(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find google default credentials: %w", err)
	}
	return ts, nil
}
