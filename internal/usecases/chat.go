package usecases

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

const (
	// Maximum number of conversation turns sent to the model
	MAX_CHAT_HISTORY_TURNS = 5

	// Low temperature keeps tool arguments deterministic.
	CHAT_TEMPERATURE = 0.1
	CHAT_MAX_TOKENS  = 512
	CHAT_TOOL_CHOICE = "auto"

	// ErrorReply is sent when the model response cannot be used.
	ErrorReply = "I'm sorry, I'm having trouble processing your request right now. Please try again."
	// TechnicalDifficultiesReply is sent when the turn fails unexpectedly.
	TechnicalDifficultiesReply = "I'm sorry, I'm experiencing technical difficulties. Please try again later."
)

//go:embed prompts/system.yml
var systemPrompt embed.FS

// promptMessage is one entry of the prompt file.
type promptMessage struct {
	Role    domain.ChatRole `yaml:"role"`
	Content string          `yaml:"content"`
}

// ChatInput holds the input of one chat turn.
type ChatInput struct {
	// SessionID selects the session. Empty starts a new session.
	SessionID string
	Message   string
	// History, when not nil, replaces the stored history of the session.
	History []domain.ConversationTurn
}

// ChatOutput holds the reply of one chat turn.
type ChatOutput struct {
	SessionID string
	Reply     string
	History   []domain.ConversationTurn
}

// Chat defines the interface for the Chat use case.
type Chat interface {
	// Execute runs one conversation turn and returns the assistant reply.
	Execute(ctx context.Context, in ChatInput) (ChatOutput, error)
}

// ChatImpl is the implementation of the Chat use case.
type ChatImpl struct {
	sessions     domain.SessionStore
	endpoint     domain.ModelEndpoint
	endpointInfo domain.ModelEndpointInfo
	parser       domain.ResponseParser
	dispatcher   domain.ToolDispatcher
	formatter    domain.ResultFormatter
	timeProvider domain.CurrentTimeProvider
	logger       *zerolog.Logger
	timeout      time.Duration
	locks        domain.SessionLocker
	createID     func() string
}

// NewChatImpl creates a new instance of ChatImpl.
func NewChatImpl(
	sessions domain.SessionStore,
	endpoint domain.ModelEndpoint,
	endpointInfo domain.ModelEndpointInfo,
	parser domain.ResponseParser,
	dispatcher domain.ToolDispatcher,
	formatter domain.ResultFormatter,
	timeProvider domain.CurrentTimeProvider,
	locks domain.SessionLocker,
	logger *zerolog.Logger,
	timeout time.Duration,
) ChatImpl {
	return ChatImpl{
		sessions:     sessions,
		endpoint:     endpoint,
		endpointInfo: endpointInfo,
		parser:       parser,
		dispatcher:   dispatcher,
		formatter:    formatter,
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      timeout,
		locks:        locks,
		createID:     uuid.NewString,
	}
}

// Execute runs one turn: the user message is appended to the session history,
// the model is asked for a reply and the reply is appended as the assistant turn.
// Only an empty message is reported as an error; every other failure becomes a reply.
func (c ChatImpl) Execute(ctx context.Context, in ChatInput) (ChatOutput, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	message := strings.TrimSpace(in.Message)
	if message == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return ChatOutput{}, err
	}

	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		sessionID = c.createID()
	}
	span.SetAttributes(telemetry.SessionID(sessionID))

	unlock := c.locks.Lock(sessionID)
	defer unlock()

	session := c.loadSession(spanCtx, sessionID)
	if in.History != nil {
		session.History = domain.SanitizeHistory(in.History)
	}
	session.AppendTurn(domain.ChatRole_User, message)
	c.transition(spanCtx, &session, domain.AgentState_AwaitingModelResponse)

	reply, outcome := c.runTurn(spanCtx, &session)

	session.AppendTurn(domain.ChatRole_Assistant, reply)
	c.transition(spanCtx, &session, domain.AgentState_Idle)

	RecordChatTurn(spanCtx, outcome)
	span.SetAttributes(attribute.String("chat.outcome", outcome))

	return ChatOutput{
		SessionID: session.ID,
		Reply:     reply,
		History:   slices.Clone(session.History),
	}, nil
}

// runTurn asks the model for the next step and turns the parsed response into a reply.
func (c ChatImpl) runTurn(ctx context.Context, session *domain.Session) (reply string, outcome string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("session_id", session.ID).
				Interface("panic", r).
				Msg("chat turn panicked")
			reply, outcome = TechnicalDifficultiesReply, chatOutcomePanic
		}
	}()

	req, err := c.buildRequest(*session)
	if err != nil {
		c.logger.Error().Err(err).Str("session_id", session.ID).Msg("failed to build model request")
		return ErrorReply, chatOutcomeError
	}

	raw := c.complete(ctx, req)
	parsed := c.parser.Parse(raw)

	switch parsed.Kind {
	case domain.ParsedResponseKind_ToolCall:
		c.transition(ctx, session, domain.AgentState_Dispatching)
		results := c.dispatcher.DispatchAll(ctx, parsed.ToolCalls, session.History)

		replies := make([]string, 0, len(parsed.ToolCalls))
		for i, call := range parsed.ToolCalls {
			var result domain.ToolResult = domain.ToolFailure{Tool: call.Name, Message: "no result"}
			if i < len(results) && results[i] != nil {
				result = results[i]
			}
			trackBooking(session, call, result)
			replies = append(replies, c.formatter.Format(call.Name, result))
		}
		c.transition(ctx, session, domain.AgentState_Replying)
		return strings.Join(replies, "\n\n"), chatOutcomeToolCall
	case domain.ParsedResponseKind_Text:
		c.transition(ctx, session, domain.AgentState_Replying)
		return parsed.Text, chatOutcomeText
	default:
		c.logger.Error().
			Str("session_id", session.ID).
			Str("provider", raw.Provider).
			Str("detail", parsed.Error).
			Msg("model response could not be used")
		return ErrorReply, chatOutcomeError
	}
}

// complete calls the model endpoint bounded by the configured timeout.
func (c ChatImpl) complete(ctx context.Context, req domain.ModelRequest) domain.RawModelResponse {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.provider", c.endpointInfo.Provider),
		attribute.String("llm.model", req.Model),
	))
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		spanCtx, cancel = context.WithTimeout(spanCtx, c.timeout)
		defer cancel()
	}

	raw := c.endpoint.Complete(spanCtx, req)
	provider := raw.Provider
	if provider == "" {
		provider = c.endpointInfo.Provider
	}

	outcome := llmOutcomeSuccess
	if telemetry.RecordErrorAndStatus(span, raw.Err) {
		outcome = llmOutcomeError
	}
	RecordLLMRequest(spanCtx, provider, outcome)
	return raw
}

// buildRequest assembles the system prompt, the recent history and the tool registry.
func (c ChatImpl) buildRequest(session domain.Session) (domain.ModelRequest, error) {
	prompt, err := c.buildSystemPrompt(session)
	if err != nil {
		return domain.ModelRequest{}, err
	}

	return domain.ModelRequest{
		Model:        c.endpointInfo.Model,
		SystemPrompt: prompt,
		History:      session.RecentHistory(MAX_CHAT_HISTORY_TURNS),
		Tools:        c.dispatcher.Descriptors(),
		Temperature:  common.Ptr(CHAT_TEMPERATURE),
		MaxTokens:    common.Ptr(CHAT_MAX_TOKENS),
		ToolChoice:   CHAT_TOOL_CHOICE,
	}, nil
}

// bookingContext is the session booking context rendered into the prompt.
type bookingContext struct {
	Bookings []string
}

// buildSystemPrompt renders the prompt file with today's date and the session booking context.
func (c ChatImpl) buildSystemPrompt(session domain.Session) (string, error) {
	file, err := systemPrompt.Open("prompts/system.yml")
	if err != nil {
		return "", fmt.Errorf("failed to open system prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []promptMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return "", fmt.Errorf("failed to decode system prompt: %w", err)
	}
	if len(messages) < 2 {
		return "", fmt.Errorf("system prompt must have a persona and a booking context message")
	}

	bookings := "none"
	if len(session.Bookings) > 0 {
		bookings, err = toon.MarshalString(bookingContext{Bookings: session.Bookings}, toon.WithLengthMarkers(true))
		if err != nil {
			return "", fmt.Errorf("failed to marshal booking context: %w", err)
		}
	}

	persona := fmt.Sprintf(messages[0].Content, c.timeProvider.Now().Format(time.DateOnly))
	contextBlock := fmt.Sprintf(messages[1].Content, bookings)
	return strings.TrimSpace(persona) + "\n\n" + strings.TrimSpace(contextBlock), nil
}

// loadSession returns the stored session or a new one. Store failures start a fresh session.
func (c ChatImpl) loadSession(ctx context.Context, id string) domain.Session {
	session, found, err := c.sessions.GetSession(ctx, id)
	if err != nil {
		c.logger.Error().Err(err).Str("session_id", id).Msg("failed to load session")
	}
	if err != nil || !found {
		return domain.NewSession(id, c.timeProvider.Now())
	}
	return session
}

// transition moves the session to the next state and persists it.
// Store failures are logged and the turn continues.
func (c ChatImpl) transition(ctx context.Context, session *domain.Session, state domain.AgentState) {
	session.State = state
	session.UpdatedAt = c.timeProvider.Now()
	if err := c.sessions.SaveSession(ctx, *session); err != nil {
		c.logger.Error().
			Err(err).
			Str("session_id", session.ID).
			Str("state", string(state)).
			Msg("failed to save session")
	}
}

// trackBooking keeps the session booking context in sync with booking tools.
func trackBooking(session *domain.Session, call domain.ToolCallRequest, result domain.ToolResult) {
	switch r := result.(type) {
	case domain.BookingOutcome:
		if call.Name == string(domain.ToolName_CreateBooking) && r.Success {
			session.RememberBooking(r.BookingID)
		}
	case domain.CancellationOutcome:
		if call.Name != string(domain.ToolName_CancelBooking) || !bool(r) {
			return
		}
		if ref, ok := call.Arguments["booking_id"].(string); ok {
			session.ForgetBooking(strings.ToUpper(strings.TrimSpace(ref)))
		}
	}
}

// InitChat is the initializer for the Chat use case.
type InitChat struct {
	Sessions     domain.SessionStore        `resolve:""`
	Endpoint     domain.ModelEndpoint       `resolve:""`
	EndpointInfo domain.ModelEndpointInfo   `resolve:""`
	Parser       domain.ResponseParser      `resolve:""`
	Dispatcher   domain.ToolDispatcher      `resolve:""`
	Formatter    domain.ResultFormatter     `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Locks        domain.SessionLocker       `resolve:""`
	Logger       *zerolog.Logger            `resolve:""`
	Timeout      time.Duration              `config:"LLM_TIMEOUT" default:"30s"`
}

// Initialize registers the Chat use case in the dependency container.
func (i InitChat) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[Chat](NewChatImpl(
		i.Sessions,
		i.Endpoint,
		i.EndpointInfo,
		i.Parser,
		i.Dispatcher,
		i.Formatter,
		i.TimeProvider,
		i.Locks,
		i.Logger,
		i.Timeout,
	))
	return ctx, nil
}
