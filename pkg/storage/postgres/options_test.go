package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func TestOptions_ConnString(t *testing.T) {
	opts := Options{
		Username: "ground",
		Password: `it's a \secret`,
		Host:     "db.local",
		Port:     5432,
		Database: "ground",
		SslMode:  "disable",
	}

	cfg, err := pgxpool.ParseConfig(opts.connString())
	require.NoError(t, err)
	require.Equal(t, "db.local", cfg.ConnConfig.Host)
	require.Equal(t, uint16(5432), cfg.ConnConfig.Port)
	require.Equal(t, "ground", cfg.ConnConfig.User)
	require.Equal(t, `it's a \secret`, cfg.ConnConfig.Password)
	require.Equal(t, "ground", cfg.ConnConfig.RuntimeParams["application_name"])

	opts.ApplicationName = "ground-worker"
	cfg, err = pgxpool.ParseConfig(opts.connString())
	require.NoError(t, err)
	require.Equal(t, "ground-worker", cfg.ConnConfig.RuntimeParams["application_name"])
}
