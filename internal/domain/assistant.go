package domain

import "context"

// Tool is one executable operation offered to the model.
type Tool interface {
	// Descriptor returns the static description sent to the model.
	Descriptor() ToolDescriptor
	// StatusMessage returns a short progress message shown while the tool runs.
	StatusMessage() string
	// Execute runs the tool. The conversation history lets a tool fill in
	// arguments the model left vague, such as a relative date.
	Execute(ctx context.Context, call ToolCallRequest, history []ConversationTurn) (ToolResult, error)
}

// ToolDispatcher resolves tool calls and executes them.
type ToolDispatcher interface {
	// Descriptors returns the descriptors of every registered tool.
	Descriptors() []ToolDescriptor
	// Dispatch executes one tool call. Failures are returned as ToolFailure results.
	Dispatch(ctx context.Context, call ToolCallRequest, history []ConversationTurn) ToolResult
	// DispatchAll executes the calls sequentially in order and returns one result per call.
	DispatchAll(ctx context.Context, calls []ToolCallRequest, history []ConversationTurn) []ToolResult
	// StatusMessage returns the progress message of a tool.
	StatusMessage(toolName string) string
}

// ResponseParser normalizes raw model responses.
type ResponseParser interface {
	// Parse classifies a raw response. It never fails: problems become the error variant.
	Parse(raw RawModelResponse) ParsedResponse
}

// ResultFormatter renders tool results as user facing text.
type ResultFormatter interface {
	Format(toolName string, result ToolResult) string
}
