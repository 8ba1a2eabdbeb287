package modelrunner

import (
	"context"
	"fmt"

	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Provider is the provider name reported by the endpoint.
const Provider = "openai"

// VertexBaseURL returns the OpenAI-compatible base URL of a Vertex AI project.
func VertexBaseURL(project, location string) string {
	return fmt.Sprintf(
		"https://%s-aiplatform.googleapis.com/v1/projects/%s/locations/%s/endpoints/openapi",
		location, project, location,
	)
}

// ChatCompletionsEndpoint adapts Client to domain.ModelEndpoint.
type ChatCompletionsEndpoint struct {
	client Client
}

// NewChatCompletionsEndpoint creates a new ChatCompletionsEndpoint.
func NewChatCompletionsEndpoint(client Client) ChatCompletionsEndpoint {
	return ChatCompletionsEndpoint{client: client}
}

// Complete implements domain.ModelEndpoint.
func (e ChatCompletionsEndpoint) Complete(ctx context.Context, req domain.ModelRequest) domain.RawModelResponse {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.history_turns", len(req.History)),
		attribute.Int("llm.tools", len(req.Tools)),
	))
	defer span.End()

	body, err := e.client.ChatCompletions(spanCtx, toChatRequest(req))
	telemetry.RecordErrorAndStatus(span, err)
	return domain.RawModelResponse{
		Provider: Provider,
		Body:     body,
		Err:      err,
	}
}

// toChatRequest maps a domain.ModelRequest to the wire request.
func toChatRequest(req domain.ModelRequest) ChatRequest {
	chatReq := ChatRequest{
		Model:       req.Model,
		Messages:    make([]ChatMessage, 0, len(req.History)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		ToolChoice:  req.ToolChoice,
	}

	if req.SystemPrompt != "" {
		chatReq.Messages = append(chatReq.Messages, ChatMessage{
			Role:    string(domain.ChatRole_System),
			Content: req.SystemPrompt,
		})
	}
	for _, turn := range req.History {
		chatReq.Messages = append(chatReq.Messages, ChatMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	for _, d := range req.Tools {
		chatReq.Tools = append(chatReq.Tools, Tool{
			Type: "function",
			Function: ToolFunc{
				Name:        string(d.Name),
				Description: d.Description,
				Parameters:  d.JSONSchema(),
			},
		})
	}
	if len(chatReq.Tools) == 0 {
		chatReq.ToolChoice = ""
	}

	return chatReq
}
