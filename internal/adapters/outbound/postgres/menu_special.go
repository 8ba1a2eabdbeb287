package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	menuSpecialFields = []string{
		"id",
		"restaurant_id",
		"name",
		"description",
		"price_inr",
		"dietary_type",
	}
)

// MenuSpecialRepository implements the domain.MenuSpecialRepository interface using PostgreSQL as the storage backend.
type MenuSpecialRepository struct {
	sb squirrel.StatementBuilderType
}

// NewMenuSpecialRepository creates a new instance of MenuSpecialRepository.
func NewMenuSpecialRepository(br squirrel.BaseRunner) MenuSpecialRepository {
	return MenuSpecialRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListMenuSpecials lists menu specials. The none preference matches every dish.
func (mr MenuSpecialRepository) ListMenuSpecials(ctx context.Context, filter domain.MenuSpecialFilter) ([]domain.MenuSpecial, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("dietary", string(filter.Dietary)),
	))
	defer span.End()

	qry := mr.sb.
		Select(menuSpecialFields...).
		From("menu_specials").
		OrderBy("id ASC")

	if filter.Dietary != "" && filter.Dietary != domain.DietaryPreference_None {
		qry = qry.Where(squirrel.Eq{"dietary_type": filter.Dietary})
	}
	if filter.RestaurantID != nil {
		qry = qry.Where(squirrel.Eq{"restaurant_id": *filter.RestaurantID})
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var specials []domain.MenuSpecial
	for rows.Next() {
		var m domain.MenuSpecial
		err := rows.Scan(
			&m.ID,
			&m.RestaurantID,
			&m.Name,
			&m.Description,
			&m.PriceINR,
			&m.DietaryType,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		specials = append(specials, m)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return specials, nil
}
