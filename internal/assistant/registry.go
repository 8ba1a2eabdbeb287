package assistant

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/assistant/tools"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"github.com/goodfoods/samvaad/internal/usecases"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

const defaultStatusMessage = "⏳ Processing request..."

// ToolRegistry maps each tool name to its implementation and dispatches tool calls.
type ToolRegistry struct {
	tools  map[domain.ToolName]domain.Tool
	logger *zerolog.Logger
}

// NewToolRegistry creates a registry for the given tools, keyed by their descriptor name.
func NewToolRegistry(logger *zerolog.Logger, registered ...domain.Tool) ToolRegistry {
	toolMap := make(map[domain.ToolName]domain.Tool, len(registered))
	for _, t := range registered {
		toolMap[t.Descriptor().Name] = t
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return ToolRegistry{
		tools:  toolMap,
		logger: logger,
	}
}

// Descriptors returns the descriptors of the registered tools in the fixed tool order.
func (r ToolRegistry) Descriptors() []domain.ToolDescriptor {
	res := make([]domain.ToolDescriptor, 0, len(r.tools))
	for _, name := range domain.ToolNames() {
		if t, ok := r.tools[name]; ok {
			res = append(res, t.Descriptor())
		}
	}
	return res
}

// StatusMessage returns a status message about the tool execution.
func (r ToolRegistry) StatusMessage(toolName string) string {
	if t, ok := r.lookup(toolName); ok {
		if msg := t.StatusMessage(); msg != "" {
			return msg
		}
	}
	return defaultStatusMessage
}

// Dispatch executes one tool call. Unknown tools, argument errors, execution
// errors and panics are all converted into a domain.ToolFailure.
func (r ToolRegistry) Dispatch(ctx context.Context, call domain.ToolCallRequest, history []domain.ConversationTurn) (result domain.ToolResult) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.ToolName(call.Name),
	))
	defer span.End()

	t, ok := r.lookup(call.Name)
	if !ok {
		failure := domain.ToolFailure{
			Tool:    call.Name,
			Message: fmt.Sprintf("Tool '%s' not found.", call.Name),
		}
		telemetry.RecordErrorAndStatus(span, failure)
		RecordToolCall(spanCtx, call.Name, toolOutcomeNotFound)
		r.logger.Warn().Str("tool", call.Name).Msg("model requested an unknown tool")
		return failure
	}

	defer func() {
		if p := recover(); p != nil {
			failure := executionFailure(call.Name, fmt.Errorf("%v", p))
			telemetry.RecordErrorAndStatus(span, failure)
			RecordToolCall(spanCtx, call.Name, toolOutcomePanic)
			r.logger.Error().Str("tool", call.Name).Interface("panic", p).Msg("tool panicked")
			result = failure
		}
	}()

	res, err := t.Execute(spanCtx, call, history)
	if err == nil && res == nil {
		err = fmt.Errorf("no result")
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordToolCall(spanCtx, call.Name, toolOutcomeFailure)
		r.logger.Error().Err(err).Str("tool", call.Name).Str("arguments", call.ArgumentsJSON()).Msg("tool execution failed")
		return executionFailure(call.Name, err)
	}

	RecordToolCall(spanCtx, call.Name, toolOutcomeSuccess)
	return res
}

// DispatchAll executes the calls sequentially in the given order. A failing call
// does not prevent the following ones from running.
func (r ToolRegistry) DispatchAll(ctx context.Context, calls []domain.ToolCallRequest, history []domain.ConversationTurn) []domain.ToolResult {
	results := make([]domain.ToolResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, r.Dispatch(ctx, call, history))
	}
	return results
}

func (r ToolRegistry) lookup(name string) (domain.Tool, bool) {
	toolName, ok := domain.ParseToolName(name)
	if !ok {
		return nil, false
	}
	t, ok := r.tools[toolName]
	return t, ok
}

func executionFailure(tool string, err error) domain.ToolFailure {
	return domain.ToolFailure{
		Tool:    tool,
		Message: fmt.Sprintf("Error executing tool %s: %s", tool, err.Error()),
	}
}

// InitToolRegistry builds the six reservation tools and registers the dispatcher.
type InitToolRegistry struct {
	Logger            *zerolog.Logger            `resolve:""`
	TimeProvider      domain.CurrentTimeProvider `resolve:""`
	FindRestaurants   usecases.FindRestaurants   `resolve:""`
	CheckAvailability usecases.CheckAvailability `resolve:""`
	CreateBooking     usecases.CreateBooking     `resolve:""`
	CancelBooking     usecases.CancelBooking     `resolve:""`
	GetBookingDetails usecases.GetBookingDetails `resolve:""`
	ListMenuSpecials  usecases.ListMenuSpecials  `resolve:""`
}

// Initialize registers the ToolDispatcher in the dependency container.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	registry := NewToolRegistry(i.Logger,
		tools.NewFindRestaurantsTool(i.FindRestaurants),
		tools.NewCheckAvailabilityTool(i.CheckAvailability, i.TimeProvider),
		tools.NewCreateBookingTool(i.CreateBooking, i.TimeProvider),
		tools.NewCancelBookingTool(i.CancelBooking),
		tools.NewGetBookingDetailsTool(i.GetBookingDetails),
		tools.NewGetMenuSpecialsTool(i.ListMenuSpecials),
	)
	depend.Register[domain.ToolDispatcher](registry)
	return ctx, nil
}

// InitResponseHandling registers the response parser and the result formatter.
type InitResponseHandling struct{}

// Initialize registers the ResponseParser and ResultFormatter in the dependency container.
func (InitResponseHandling) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ResponseParser](NewResponseParser())
	depend.Register[domain.ResultFormatter](NewFormatter())
	return ctx, nil
}
