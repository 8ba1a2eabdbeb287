package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ListMenuSpecials defines the interface for the ListMenuSpecials use case.
type ListMenuSpecials interface {
	Query(ctx context.Context, filter domain.MenuSpecialFilter) ([]domain.MenuSpecial, error)
}

// ListMenuSpecialsImpl is the implementation of the ListMenuSpecials use case.
type ListMenuSpecialsImpl struct {
	repo domain.MenuSpecialRepository
}

// NewListMenuSpecialsImpl creates a new instance of ListMenuSpecialsImpl.
func NewListMenuSpecialsImpl(repo domain.MenuSpecialRepository) ListMenuSpecialsImpl {
	return ListMenuSpecialsImpl{repo: repo}
}

// Query lists the chef specials. An empty or "none" preference lists every dietary type.
func (l ListMenuSpecialsImpl) Query(ctx context.Context, filter domain.MenuSpecialFilter) ([]domain.MenuSpecial, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("filter.dietary", string(filter.Dietary)),
	))
	defer span.End()

	dietary, err := domain.ParseDietaryPreference(string(filter.Dietary))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	filter.Dietary = dietary

	specials, err := l.repo.ListMenuSpecials(spanCtx, filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return specials, nil
}

// InitListMenuSpecials initializes the ListMenuSpecials use case and registers it in the dependency container.
type InitListMenuSpecials struct {
	Repo domain.MenuSpecialRepository `resolve:""`
}

// Initialize registers the ListMenuSpecials use case in the dependency container.
func (i InitListMenuSpecials) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListMenuSpecials](NewListMenuSpecialsImpl(i.Repo))
	return ctx, nil
}
