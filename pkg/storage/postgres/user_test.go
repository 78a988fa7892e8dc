package postgres_test

import (
	"context"
	"ground/pkg/domain"
	"ground/pkg/fakedata"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_UpsertUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	t.Run("insert and update", func(t *testing.T) {
		stored, err := pgSQL.UpsertUser(ctx, fakedata.User())
		require.NoError(t, err)
		require.Equal(t, fakedata.User(), *stored)

		renamed := fakedata.User()
		renamed.DisplayName = "Renamed"
		stored, err = pgSQL.UpsertUser(ctx, renamed)
		require.NoError(t, err)
		require.Equal(t, renamed, *stored)

		found, err := pgSQL.UserByID(ctx, fakedata.UserID)
		require.NoError(t, err)
		require.Equal(t, renamed, *found)
	})

	t.Run("null columns become empty strings", func(t *testing.T) {
		_, err := pgSQL.DB.ExecContext(ctx, `INSERT INTO users (id) VALUES ('bare')`)
		require.NoError(t, err)

		found, err := pgSQL.UserByID(ctx, "bare")
		require.NoError(t, err)
		require.Equal(t, domain.User{ID: "bare"}, *found)
	})

	t.Run("empty strings are stored as null", func(t *testing.T) {
		_, err := pgSQL.UpsertUser(ctx, domain.User{ID: "empty"})
		require.NoError(t, err)

		var nulls int
		row := pgSQL.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM users WHERE id = 'empty' AND email IS NULL AND display_name IS NULL`)
		require.NoError(t, row.Scan(&nulls))
		require.Equal(t, 1, nulls)
	})

	t.Run("missing user", func(t *testing.T) {
		found, err := pgSQL.UserByID(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, found)
	})
}
