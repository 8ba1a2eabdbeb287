package assistant

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	toolOutcomeSuccess  = "success"
	toolOutcomeFailure  = "failure"
	toolOutcomeNotFound = "not_found"
	toolOutcomePanic    = "panic"
)

var (
	meter     = otel.Meter("assistant")
	ToolCalls metric.Int64Counter
)

func init() {
	var err error
	ToolCalls, err = meter.Int64Counter(
		"tool_calls_total",
		metric.WithDescription("Total tool calls dispatched, by tool and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordToolCall counts one dispatched tool call.
func RecordToolCall(ctx context.Context, tool, outcome string) {
	ToolCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.String("outcome", outcome),
	))
}
