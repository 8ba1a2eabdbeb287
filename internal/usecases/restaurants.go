package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FindRestaurants defines the interface for the FindRestaurants use case.
type FindRestaurants interface {
	Query(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error)
}

// FindRestaurantsImpl is the implementation of the FindRestaurants use case.
type FindRestaurantsImpl struct {
	repo domain.RestaurantRepository
}

// NewFindRestaurantsImpl creates a new instance of FindRestaurantsImpl.
func NewFindRestaurantsImpl(repo domain.RestaurantRepository) FindRestaurantsImpl {
	return FindRestaurantsImpl{repo: repo}
}

// Query lists the restaurants whose address or name contains the location
// and whose cuisine contains the cuisine. Empty criteria match everything.
func (f FindRestaurantsImpl) Query(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("filter.location", filter.Location),
		attribute.String("filter.cuisine", filter.Cuisine),
	))
	defer span.End()

	filter.Location = strings.TrimSpace(filter.Location)
	filter.Cuisine = strings.TrimSpace(filter.Cuisine)

	restaurants, err := f.repo.FindRestaurants(spanCtx, filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return restaurants, nil
}

// GetRestaurant defines the interface for the GetRestaurant use case.
type GetRestaurant interface {
	Query(ctx context.Context, id int) (domain.Restaurant, error)
}

// GetRestaurantImpl is the implementation of the GetRestaurant use case.
type GetRestaurantImpl struct {
	repo domain.RestaurantRepository
}

// NewGetRestaurantImpl creates a new instance of GetRestaurantImpl.
func NewGetRestaurantImpl(repo domain.RestaurantRepository) GetRestaurantImpl {
	return GetRestaurantImpl{repo: repo}
}

// Query returns the restaurant with the given id.
func (g GetRestaurantImpl) Query(ctx context.Context, id int) (domain.Restaurant, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.RestaurantID(id),
	))
	defer span.End()

	restaurant, found, err := g.repo.GetRestaurant(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Restaurant{}, err
	}
	if !found {
		err := domain.NewNotFoundErr(fmt.Sprintf("restaurant %d not found", id))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Restaurant{}, err
	}
	return restaurant, nil
}

// InitRestaurantQueries registers the FindRestaurants and GetRestaurant use cases.
type InitRestaurantQueries struct {
	Repo domain.RestaurantRepository `resolve:""`
}

// Initialize registers the restaurant use cases in the dependency container.
func (i InitRestaurantQueries) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[FindRestaurants](NewFindRestaurantsImpl(i.Repo))
	depend.Register[GetRestaurant](NewGetRestaurantImpl(i.Repo))
	return ctx, nil
}
