package sessions

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/adapters/outbound/postgres"
	"github.com/goodfoods/samvaad/internal/common"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/rs/zerolog"
)

const (
	StoreKind_Memory   = "memory"
	StoreKind_Postgres = "postgres"
)

// InitSessionStore registers the domain.SessionStore selected by SESSION_STORE.
// The same store is registered as the domain.SessionPruner, next to the
// domain.SessionLocker shared by every use case that mutates a session.
type InitSessionStore struct {
	Logger      *zerolog.Logger `resolve:""`
	DB          *sql.DB         `resolve:""`
	Kind        string          `config:"SESSION_STORE" default:"memory"`
	MaxSessions int             `config:"SESSION_MAX" default:"1000"`
	TTL         time.Duration   `config:"SESSION_TTL" default:"2h"`
}

// Initialize registers the session store in the dependency container.
func (i InitSessionStore) Initialize(ctx context.Context) (context.Context, error) {
	switch i.Kind {
	case StoreKind_Memory:
		if i.MaxSessions <= 0 {
			return ctx, fmt.Errorf("SESSION_MAX must be greater than 0")
		}
		store := NewMemoryStore(i.MaxSessions, i.TTL)
		depend.Register[domain.SessionStore](store)
		depend.Register[domain.SessionPruner](store)
	case StoreKind_Postgres:
		store := postgres.NewSessionStore(i.DB)
		depend.Register[domain.SessionStore](store)
		depend.Register[domain.SessionPruner](store)
	default:
		return ctx, fmt.Errorf("unsupported SESSION_STORE %q", i.Kind)
	}
	depend.Register[domain.SessionLocker](&common.KeyedMutex{})

	i.Logger.Info().
		Str("store", i.Kind).
		Int("max_sessions", i.MaxSessions).
		Dur("ttl", i.TTL).
		Msg("InitSessionStore: session store ready")
	return ctx, nil
}
