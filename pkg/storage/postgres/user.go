package postgres

import (
	"context"
	"fmt"
	"ground/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	usersTable = "users"
)

// UpsertUser inserts the user or refreshes its email and display name.
func (p *PgSQL) UpsertUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"email":        goqu.I("excluded.email"),
			"display_name": goqu.I("excluded.display_name"),
			"updated_at":   goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not upsert user into pg: %w", err)
	}

	return result.ToDomain(), nil
}

// UserByID returns the user with the given ID, or nil when missing.
func (p *PgSQL) UserByID(ctx context.Context, id string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
