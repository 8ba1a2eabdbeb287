package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/gemini"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/modelrunner"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/scripted"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestInitModelEndpoint_Initialize(t *testing.T) {
	logger := zerolog.Nop()

	tests := map[string]struct {
		init         InitModelEndpoint
		expectedType any
		expectedInfo domain.ModelEndpointInfo
		expectedErr  string
	}{
		"openai-with-base-url": {
			init: InitModelEndpoint{
				Provider: "openai",
				BaseURL:  "http://localhost:8080/v1",
				APIKey:   "secret",
			},
			expectedType: modelrunner.ChatCompletionsEndpoint{},
			expectedInfo: domain.ModelEndpointInfo{Provider: "openai", Model: "meta/llama-3.1-8b-instruct-maas"},
		},
		"openai-vertex-with-adc": {
			init: InitModelEndpoint{
				Provider:     "openai",
				Model:        "7439580447044009984",
				Project:      "goodfoods",
				Location:     "us-central1",
				UseGoogleADC: true,
				tokenSource: func(ctx context.Context) (oauth2.TokenSource, error) {
					return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "adc"}), nil
				},
			},
			expectedType: modelrunner.ChatCompletionsEndpoint{},
			expectedInfo: domain.ModelEndpointInfo{Provider: "openai", Model: "7439580447044009984"},
		},
		"openai-adc-failure": {
			init: InitModelEndpoint{
				Provider:     "openai",
				Project:      "goodfoods",
				UseGoogleADC: true,
				tokenSource: func(ctx context.Context) (oauth2.TokenSource, error) {
					return nil, errors.New("no credentials")
				},
			},
			expectedErr: "failed to find google default credentials: no credentials",
		},
		"openai-without-target": {
			init:        InitModelEndpoint{Provider: "openai"},
			expectedErr: `LLM_BASE_URL or GOOGLE_CLOUD_PROJECT_ID is required for provider "openai"`,
		},
		"gemini-with-api-key": {
			init: InitModelEndpoint{
				Provider: "gemini",
				APIKey:   "test-key",
			},
			expectedType: gemini.Endpoint{},
			expectedInfo: domain.ModelEndpointInfo{Provider: "gemini", Model: "gemini-2.0-flash"},
		},
		"scripted": {
			init:         InitModelEndpoint{Provider: "scripted"},
			expectedType: scripted.Model{},
			expectedInfo: domain.ModelEndpointInfo{Provider: "scripted", Model: "samvaad-dev-rules"},
		},
		"unknown-provider": {
			init:        InitModelEndpoint{Provider: "mystery"},
			expectedErr: `unknown LLM_PROVIDER "mystery"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.init.Logger = &logger
			tt.init.HttpClient = http.DefaultClient
			tt.init.TimeProvider = domain.NewMockCurrentTimeProvider(t)

			_, err := tt.init.Initialize(context.Background())
			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)

			endpoint, err := depend.Resolve[domain.ModelEndpoint]()
			require.NoError(t, err)
			assert.IsType(t, tt.expectedType, endpoint)

			info, err := depend.Resolve[domain.ModelEndpointInfo]()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedInfo, info)
		})
	}
}
