package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

func TestEndpoint_Complete(t *testing.T) {
	req := domain.ModelRequest{
		Model:        "gemini-2.0-flash",
		SystemPrompt: "You are Samvaad.",
		History: []domain.ConversationTurn{
			{Role: domain.ChatRole_User, Content: "show me the specials"},
		},
		Tools: []domain.ToolDescriptor{
			{Name: domain.ToolName_GetMenuSpecials, Description: "Menu specials"},
		},
		Temperature: common.Ptr(0.1),
		MaxTokens:   common.Ptr(512),
		ToolChoice:  "auto",
	}

	tests := map[string]struct {
		status  int
		body    string
		assertR func(t *testing.T, raw domain.RawModelResponse)
	}{
		"function-call": {
			status: http.StatusOK,
			body:   `{"candidates":[{"content":{"role":"model","parts":[{"functionCall":{"name":"get_menu_specials","args":{"dietary_preference":"vegan"}}}]}}]}`,
			assertR: func(t *testing.T, raw domain.RawModelResponse) {
				require.NoError(t, raw.Err)
				assert.Equal(t, "get_menu_specials", gjson.GetBytes(raw.Body, "candidates.0.content.parts.0.functionCall.name").String())
				assert.Equal(t, "vegan", gjson.GetBytes(raw.Body, "candidates.0.content.parts.0.functionCall.args.dietary_preference").String())
			},
		},
		"text": {
			status: http.StatusOK,
			body:   `{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello!"}]}}]}`,
			assertR: func(t *testing.T, raw domain.RawModelResponse) {
				require.NoError(t, raw.Err)
				assert.Equal(t, "Hello!", gjson.GetBytes(raw.Body, "candidates.0.content.parts.0.text").String())
			},
		},
		"api-error": {
			status: http.StatusBadRequest,
			body:   `{"error":{"code":400,"message":"bad request","status":"INVALID_ARGUMENT"}}`,
			assertR: func(t *testing.T, raw domain.RawModelResponse) {
				assert.Error(t, raw.Err)
				assert.Nil(t, raw.Body)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.0-flash:generateContent"), r.URL.Path)

				var got map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Contains(t, got, "systemInstruction")
				assert.Contains(t, got, "tools")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body)) //nolint:errcheck
			}))
			defer server.Close()

			endpoint, err := New(context.Background(), Config{
				APIKey:     "test-key",
				BaseURL:    server.URL,
				HTTPClient: server.Client(),
			})
			require.NoError(t, err)

			raw := endpoint.Complete(context.Background(), req)
			assert.Equal(t, Provider, raw.Provider)
			tt.assertR(t, raw)
		})
	}
}

func TestConvertHistory(t *testing.T) {
	got := ConvertHistory([]domain.ConversationTurn{
		{Role: domain.ChatRole_System, Content: "ignored"},
		{Role: domain.ChatRole_User, Content: "hi"},
		{Role: domain.ChatRole_Assistant, Content: "hello"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "user", got[0].Role)
	assert.Equal(t, "hi", got[0].Parts[0].Text)
	assert.Equal(t, "model", got[1].Role)
	assert.Equal(t, "hello", got[1].Parts[0].Text)
}

func TestConvertTools(t *testing.T) {
	assert.Nil(t, ConvertTools(nil))

	got := ConvertTools([]domain.ToolDescriptor{
		{Name: domain.ToolName_CancelBooking, Description: "Cancel", Parameters: domain.ToolParameters{
			Properties: map[string]domain.ToolParameter{"booking_id": {Type: "string"}},
			Required:   []string{"booking_id"},
		}},
	})
	require.Len(t, got, 1)
	require.Len(t, got[0].FunctionDeclarations, 1)
	decl := got[0].FunctionDeclarations[0]
	assert.Equal(t, "cancel_booking", decl.Name)
	assert.Equal(t, "Cancel", decl.Description)
	assert.Equal(t, map[string]any{
		"type":       "object",
		"properties": map[string]any{"booking_id": map[string]any{"type": "string"}},
		"required":   []string{"booking_id"},
	}, decl.ParametersJsonSchema)
}

func TestBuildConfig(t *testing.T) {
	cfg := buildConfig(domain.ModelRequest{
		Tools:       []domain.ToolDescriptor{{Name: domain.ToolName_FindRestaurants}},
		Temperature: common.Ptr(0.5),
		MaxTokens:   common.Ptr(256),
		ToolChoice:  "auto",
	})

	require.NotNil(t, cfg.Temperature)
	assert.Equal(t, float32(0.5), *cfg.Temperature)
	assert.Equal(t, int32(256), cfg.MaxOutputTokens)
	assert.Nil(t, cfg.SystemInstruction)
	require.NotNil(t, cfg.ToolConfig)
	assert.Equal(t, genai.FunctionCallingConfigModeAuto, cfg.ToolConfig.FunctionCallingConfig.Mode)
}
