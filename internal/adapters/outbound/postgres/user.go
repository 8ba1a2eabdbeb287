package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/goodfoods/samvaad/internal/domain"
	"github.com/goodfoods/samvaad/internal/telemetry"
)

// UserRepository implements the domain.UserRepository interface using PostgreSQL as the storage backend.
type UserRepository struct {
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(br squirrel.BaseRunner) UserRepository {
	return UserRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetOrCreateUser upserts a guest keyed by phone number.
// The stored name of a returning guest is kept.
func (ur UserRepository) GetOrCreateUser(ctx context.Context, name, phoneNumber string) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var u domain.User
	err := ur.sb.
		Insert("users").
		Columns("name", "phone_number").
		Values(name, phoneNumber).
		Suffix("ON CONFLICT (phone_number) DO UPDATE SET phone_number = EXCLUDED.phone_number RETURNING id, name, phone_number").
		QueryRowContext(spanCtx).
		Scan(&u.ID, &u.Name, &u.PhoneNumber)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	return u, nil
}
