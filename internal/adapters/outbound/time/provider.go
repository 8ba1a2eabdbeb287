package time

import (
	"context"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
)

// CurrentTimeProvider reports the current time in the restaurants' time zone.
type CurrentTimeProvider struct {
	loc *time.Location
}

// NewCurrentTimeProvider creates a provider for the location. A nil location means UTC.
func NewCurrentTimeProvider(loc *time.Location) CurrentTimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return CurrentTimeProvider{loc: loc}
}

// Now returns the current time.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.loc == nil {
		return time.Now()
	}
	return time.Now().In(ts.loc)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Timezone string `config:"APP_TIMEZONE" default:"Asia/Kolkata"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	loc, err := time.LoadLocation(its.Timezone)
	if err != nil {
		return ctx, fmt.Errorf("invalid APP_TIMEZONE %q: %w", its.Timezone, err)
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(loc))
	return ctx, nil
}
