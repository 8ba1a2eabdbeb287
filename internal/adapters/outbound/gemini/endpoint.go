// Package gemini implements domain.ModelEndpoint on the Google Gen AI SDK.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

// Provider is the provider name reported by the endpoint.
const Provider = "gemini"

// Config holds the connection settings of the Gemini endpoint.
// An empty APIKey selects the Vertex AI backend for Project and Location.
type Config struct {
	APIKey     string
	Project    string
	Location   string
	BaseURL    string
	HTTPClient *http.Client
}

// Endpoint sends model requests through generateContent.
type Endpoint struct {
	models *genai.Models
}

// New creates a new Gemini Endpoint.
func New(ctx context.Context, cfg Config) (Endpoint, error) {
	cc := &genai.ClientConfig{
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	}
	if cfg.APIKey != "" {
		cc.APIKey = cfg.APIKey
		cc.Backend = genai.BackendGeminiAPI
	} else {
		cc.Project = cfg.Project
		cc.Location = cfg.Location
		cc.Backend = genai.BackendVertexAI
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return Endpoint{}, fmt.Errorf("gemini: %w", err)
	}
	return Endpoint{models: client.Models}, nil
}

// Complete implements domain.ModelEndpoint. The native response is handed back
// as JSON in the generateContent "candidates" layout.
func (e Endpoint) Complete(ctx context.Context, req domain.ModelRequest) domain.RawModelResponse {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.history_turns", len(req.History)),
	))
	defer span.End()

	resp, err := e.models.GenerateContent(spanCtx, req.Model, ConvertHistory(req.History), buildConfig(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RawModelResponse{Provider: Provider, Err: err}
	}

	body, err := json.Marshal(resp)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RawModelResponse{Provider: Provider, Err: fmt.Errorf("marshal response: %w", err)}
	}
	return domain.RawModelResponse{Provider: Provider, Body: body}
}

func buildConfig(req domain.ModelRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		Tools: ConvertTools(req.Tools),
	}

	if req.SystemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}
	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}
	if req.MaxTokens != nil {
		config.MaxOutputTokens = int32(*req.MaxTokens)
	}
	if len(config.Tools) > 0 && req.ToolChoice == "auto" {
		config.ToolConfig = &genai.ToolConfig{
			FunctionCallingConfig: &genai.FunctionCallingConfig{
				Mode: genai.FunctionCallingConfigModeAuto,
			},
		}
	}
	return config
}

// ConvertHistory converts conversation turns to genai contents.
// System turns are carried by the system instruction and skipped here.
func ConvertHistory(turns []domain.ConversationTurn) []*genai.Content {
	var result []*genai.Content
	for _, turn := range turns {
		var role string
		switch turn.Role {
		case domain.ChatRole_User:
			role = "user"
		case domain.ChatRole_Assistant:
			role = "model"
		default:
			continue
		}
		result = append(result, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}
	return result
}

// ConvertTools converts tool descriptors to genai function declarations.
func ConvertTools(descriptors []domain.ToolDescriptor) []*genai.Tool {
	if len(descriptors) == 0 {
		return nil
	}
	decls := make([]*genai.FunctionDeclaration, len(descriptors))
	for i, d := range descriptors {
		decls[i] = &genai.FunctionDeclaration{
			Name:                 string(d.Name),
			Description:          d.Description,
			ParametersJsonSchema: d.JSONSchema(),
		}
	}
	return []*genai.Tool{{FunctionDeclarations: decls}}
}
