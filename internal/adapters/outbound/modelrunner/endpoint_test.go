package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletionsEndpoint_Complete(t *testing.T) {
	req := domain.ModelRequest{
		Model:        "meta/llama-3.1-8b-instruct",
		SystemPrompt: "You are Samvaad.",
		History: []domain.ConversationTurn{
			{Role: domain.ChatRole_User, Content: "find restaurants in Koramangala"},
		},
		Tools: []domain.ToolDescriptor{
			{
				Name:        domain.ToolName_FindRestaurants,
				Description: "Search restaurants",
				Parameters: domain.ToolParameters{
					Type: "object",
					Properties: map[string]domain.ToolParameter{
						"location": {Type: "string", Description: "Area"},
					},
				},
			},
		},
		Temperature: common.Ptr(0.1),
		MaxTokens:   common.Ptr(512),
		ToolChoice:  "auto",
	}

	tests := map[string]struct {
		status      int
		body        string
		expectBody  bool
		expectError bool
	}{
		"success": {
			status:     http.StatusOK,
			body:       `{"choices":[{"message":{"content":"hello"}}]}`,
			expectBody: true,
		},
		"server-error": {
			status:      http.StatusInternalServerError,
			body:        `boom`,
			expectError: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				var got map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "meta/llama-3.1-8b-instruct", got["model"])
				assert.Equal(t, "auto", got["tool_choice"])
				assert.Equal(t, 0.1, got["temperature"])
				assert.Equal(t, float64(512), got["max_tokens"])
				assert.Equal(t, false, got["stream"])
				assert.Len(t, got["messages"], 2)
				assert.Len(t, got["tools"], 1)

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer server.Close()

			endpoint := NewChatCompletionsEndpoint(NewClient(server.URL, nil, server.Client()))
			raw := endpoint.Complete(context.Background(), req)

			assert.Equal(t, Provider, raw.Provider)
			if tt.expectError {
				assert.Error(t, raw.Err)
				assert.Nil(t, raw.Body)
			}
			if tt.expectBody {
				require.NoError(t, raw.Err)
				assert.JSONEq(t, tt.body, string(raw.Body))
			}
		})
	}
}

func TestToChatRequest(t *testing.T) {
	got := toChatRequest(domain.ModelRequest{
		Model: "m",
		History: []domain.ConversationTurn{
			{Role: domain.ChatRole_User, Content: "hi"},
			{Role: domain.ChatRole_Assistant, Content: "hello"},
		},
		ToolChoice: "auto",
	})

	assert.Equal(t, ChatRequest{
		Model: "m",
		Messages: []ChatMessage{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
		},
	}, got)
}

func TestVertexBaseURL(t *testing.T) {
	assert.Equal(t,
		"https://us-central1-aiplatform.googleapis.com/v1/projects/goodfoods/locations/us-central1/endpoints/openapi",
		VertexBaseURL("goodfoods", "us-central1"),
	)
}
