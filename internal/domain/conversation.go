package domain

import (
	"context"
	"slices"
	"time"
)

// ChatRole represents the role of a conversation turn.
type ChatRole string

const (
	ChatRole_User      ChatRole = "user"
	ChatRole_Assistant ChatRole = "assistant"
	ChatRole_System    ChatRole = "system"
)

// ConversationTurn is one entry of a session history.
type ConversationTurn struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// AgentState is the orchestrator state of a session.
type AgentState string

const (
	AgentState_Idle                  AgentState = "idle"
	AgentState_AwaitingModelResponse AgentState = "awaiting_model_response"
	AgentState_Dispatching           AgentState = "dispatching"
	AgentState_Replying              AgentState = "replying"
)

// Session holds the conversation state of one user.
type Session struct {
	ID      string
	History []ConversationTurn
	// Bookings holds the references of the bookings made in this session
	// so "cancel my booking" style requests can be resolved by the model.
	Bookings  []string
	State     AgentState
	UpdatedAt time.Time
}

// NewSession creates an empty idle session.
func NewSession(id string, now time.Time) Session {
	return Session{
		ID:        id,
		State:     AgentState_Idle,
		UpdatedAt: now,
	}
}

// AppendTurn appends a turn to the session history.
func (s *Session) AppendTurn(role ChatRole, content string) {
	s.History = append(s.History, ConversationTurn{Role: role, Content: content})
}

// RememberBooking adds a booking reference to the session booking context.
func (s *Session) RememberBooking(reference string) {
	if reference == "" || slices.Contains(s.Bookings, reference) {
		return
	}
	s.Bookings = append(s.Bookings, reference)
}

// ForgetBooking removes a booking reference from the session booking context.
func (s *Session) ForgetBooking(reference string) {
	s.Bookings = slices.DeleteFunc(s.Bookings, func(r string) bool {
		return r == reference
	})
}

// Reset clears the history and the booking context.
func (s *Session) Reset(now time.Time) {
	s.History = nil
	s.Bookings = nil
	s.State = AgentState_Idle
	s.UpdatedAt = now
}

// RecentHistory returns at most maxTurns of the latest turns. The window never
// starts with an assistant turn so the model always sees a user turn first.
func (s Session) RecentHistory(maxTurns int) []ConversationTurn {
	if maxTurns <= 0 || len(s.History) == 0 {
		return nil
	}
	start := max(len(s.History)-maxTurns, 0)
	for start < len(s.History) && s.History[start].Role != ChatRole_User {
		start++
	}
	return slices.Clone(s.History[start:])
}

// SanitizeHistory keeps only user and assistant turns with content, in order,
// and makes the roles alternate: of consecutive turns with the same role only
// the latest is kept. A trailing user turn is dropped because the incoming
// message follows it. It is used for histories supplied by API callers.
func SanitizeHistory(turns []ConversationTurn) []ConversationTurn {
	res := make([]ConversationTurn, 0, len(turns))
	for _, t := range turns {
		if t.Content == "" {
			continue
		}
		if t.Role != ChatRole_User && t.Role != ChatRole_Assistant {
			continue
		}
		if n := len(res); n > 0 && res[n-1].Role == t.Role {
			res[n-1] = t
			continue
		}
		res = append(res, t)
	}
	if n := len(res); n > 0 && res[n-1].Role == ChatRole_User {
		res = res[:n-1]
	}
	return res
}

// SessionLocker serializes work on one session. Lock blocks until the session
// is free and returns the function that releases it.
type SessionLocker interface {
	Lock(sessionID string) func()
}

// SessionStore persists sessions keyed by session id.
type SessionStore interface {
	// GetSession returns the session and whether it exists.
	GetSession(ctx context.Context, id string) (Session, bool, error)
	// SaveSession creates or replaces a session.
	SaveSession(ctx context.Context, session Session) error
	// DeleteSession removes a session. Missing sessions are not an error.
	DeleteSession(ctx context.Context, id string) error
	// CountSessions returns the number of stored sessions.
	CountSessions(ctx context.Context) (int, error)
}

// SessionPruner removes sessions that have been idle for too long.
type SessionPruner interface {
	// DeleteIdleSessions deletes sessions last updated before the given time
	// and returns how many were removed.
	DeleteIdleSessions(ctx context.Context, before time.Time) (int64, error)
}
