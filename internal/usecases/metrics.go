package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	chatOutcomeToolCall = "tool_call"
	chatOutcomeText     = "text"
	chatOutcomeError    = "error"
	chatOutcomePanic    = "panic"

	llmOutcomeSuccess = "success"
	llmOutcomeError   = "error"
)

var (
	meter       = otel.Meter("usecases")
	ChatTurns   metric.Int64Counter
	LLMRequests metric.Int64Counter
)

func init() {
	var err error
	// One per user message, by how the reply was produced
	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Total chat turns, by outcome"),
	)
	if err != nil {
		panic(err)
	}

	LLMRequests, err = meter.Int64Counter(
		"llm_requests_total",
		metric.WithDescription("Total model endpoint requests, by provider and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordChatTurn counts one completed chat turn.
func RecordChatTurn(ctx context.Context, outcome string) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordLLMRequest counts one model endpoint request.
func RecordLLMRequest(ctx context.Context, provider, outcome string) {
	LLMRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("outcome", outcome),
	))
}
