package domain

import (
	"context"
	"slices"
)

// ModelRequest is the provider agnostic request for one model turn.
type ModelRequest struct {
	Model        string
	SystemPrompt string
	History      []ConversationTurn
	Tools        []ToolDescriptor
	// Optional generation settings.
	Temperature *float64
	MaxTokens   *int
	ToolChoice  string
}

// RawModelResponse is the unparsed outcome of one model endpoint call.
// Transport failures (unreachable endpoint, timeout, non-2xx status) are carried in Err.
type RawModelResponse struct {
	Provider string
	Body     []byte
	Err      error
}

// ModelEndpoint sends requests to a hosted language model.
type ModelEndpoint interface {
	// Complete performs one blocking request. It never returns a Go error:
	// failures are reported through RawModelResponse.Err.
	Complete(ctx context.Context, req ModelRequest) RawModelResponse
}

// ModelEndpointInfo describes the configured model endpoint.
type ModelEndpointInfo struct {
	Provider string
	Model    string
}

// ParsedResponseKind is the variant tag of a ParsedResponse.
type ParsedResponseKind string

const (
	ParsedResponseKind_ToolCall ParsedResponseKind = "tool_call"
	ParsedResponseKind_Text     ParsedResponseKind = "text"
	ParsedResponseKind_Error    ParsedResponseKind = "error"
)

// ParsedResponse is the normalized model output.
// Exactly one of ToolCalls, Text or Error is meaningful, selected by Kind.
type ParsedResponse struct {
	Kind      ParsedResponseKind
	ToolCalls []ToolCallRequest
	Text      string
	Error     string
}

// NewToolCallResponse creates a tool_call variant preserving call order.
func NewToolCallResponse(calls []ToolCallRequest) ParsedResponse {
	return ParsedResponse{Kind: ParsedResponseKind_ToolCall, ToolCalls: slices.Clone(calls)}
}

// NewTextResponse creates a text variant.
func NewTextResponse(text string) ParsedResponse {
	return ParsedResponse{Kind: ParsedResponseKind_Text, Text: text}
}

// NewErrorResponse creates an error variant.
func NewErrorResponse(message string) ParsedResponse {
	return ParsedResponse{Kind: ParsedResponseKind_Error, Error: message}
}
