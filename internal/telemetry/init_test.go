package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	logger := zerolog.Nop()
	init := &InitOpenTelemetry{
		Logger:          &logger,
		ServiceName:     "samvaad",
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	logger := zerolog.Nop()
	init := InitHttpClient{Logger: &logger, Timeout: time.Second}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
}

func TestNewHttpClient(t *testing.T) {
	tests := map[string]struct {
		retryMax      int
		status        int
		expectedCalls int32
	}{
		"no-retries-by-default": {
			retryMax:      0,
			status:        http.StatusServiceUnavailable,
			expectedCalls: 1,
		},
		"retries-on-503": {
			retryMax:      1,
			status:        http.StatusServiceUnavailable,
			expectedCalls: 2,
		},
		"never-retries-500": {
			retryMax:      1,
			status:        http.StatusInternalServerError,
			expectedCalls: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			logger := zerolog.Nop()
			client := NewHttpClient(&logger, tt.retryMax, 5*time.Second)
			assert.Equal(t, 5*time.Second, client.Timeout)

			resp, err := client.Get(server.URL)
			if err == nil {
				require.NoError(t, resp.Body.Close())
			}
			assert.Equal(t, tt.expectedCalls, calls.Load())
		})
	}
}
