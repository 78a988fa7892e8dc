package storage

import (
	"context"
	"ground/pkg/domain"
)

// UserStorage persists user profiles.
type UserStorage interface {
	// UpsertUser inserts the user or updates the email and display name of an
	// existing one, returning the stored row.
	UpsertUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user with the given ID, or nil when missing.
	UserByID(ctx context.Context, ID string) (*domain.User, error)
}
