package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
)

// SessionStatus describes one session.
type SessionStatus struct {
	ID        string
	Found     bool
	State     domain.AgentState
	TurnCount int
	Bookings  []string
}

// AgentStatus describes the assistant configuration and, optionally, one session.
type AgentStatus struct {
	Provider       string
	Model          string
	Tools          []domain.ToolName
	ActiveSessions int
	Session        *SessionStatus
}

// GetAgentStatus defines the interface for the GetAgentStatus use case.
type GetAgentStatus interface {
	Query(ctx context.Context, sessionID *string) (AgentStatus, error)
}

// GetAgentStatusImpl is the implementation of the GetAgentStatus use case.
type GetAgentStatusImpl struct {
	sessions     domain.SessionStore
	dispatcher   domain.ToolDispatcher
	endpointInfo domain.ModelEndpointInfo
}

// NewGetAgentStatusImpl creates a new instance of GetAgentStatusImpl.
func NewGetAgentStatusImpl(
	sessions domain.SessionStore,
	dispatcher domain.ToolDispatcher,
	endpointInfo domain.ModelEndpointInfo,
) GetAgentStatusImpl {
	return GetAgentStatusImpl{
		sessions:     sessions,
		dispatcher:   dispatcher,
		endpointInfo: endpointInfo,
	}
}

// Query reports the model endpoint, the registered tools and the number of
// stored sessions. When a session id is given, the state of that session is included.
func (g GetAgentStatusImpl) Query(ctx context.Context, sessionID *string) (AgentStatus, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	count, err := g.sessions.CountSessions(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return AgentStatus{}, err
	}

	descriptors := g.dispatcher.Descriptors()
	status := AgentStatus{
		Provider:       g.endpointInfo.Provider,
		Model:          g.endpointInfo.Model,
		Tools:          make([]domain.ToolName, 0, len(descriptors)),
		ActiveSessions: count,
	}
	for _, d := range descriptors {
		status.Tools = append(status.Tools, d.Name)
	}

	if sessionID == nil || *sessionID == "" {
		return status, nil
	}

	session, found, err := g.sessions.GetSession(spanCtx, *sessionID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return AgentStatus{}, err
	}
	sessionStatus := SessionStatus{ID: *sessionID, Found: found, State: domain.AgentState_Idle}
	if found {
		sessionStatus.State = session.State
		sessionStatus.TurnCount = len(session.History)
		sessionStatus.Bookings = session.Bookings
	}
	status.Session = &sessionStatus
	return status, nil
}

// InitGetAgentStatus initializes the GetAgentStatus use case and registers it in the dependency container.
type InitGetAgentStatus struct {
	Sessions     domain.SessionStore      `resolve:""`
	Dispatcher   domain.ToolDispatcher    `resolve:""`
	EndpointInfo domain.ModelEndpointInfo `resolve:""`
}

// Initialize registers the GetAgentStatus use case in the dependency container.
func (i InitGetAgentStatus) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetAgentStatus](NewGetAgentStatusImpl(i.Sessions, i.Dispatcher, i.EndpointInfo))
	return ctx, nil
}
