package postgres_test

import (
	"context"
	"ground/pkg/domain"
	"ground/pkg/fakedata"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreLOIs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	_, err := pgSQL.StoreSurvey(ctx, fakedata.Survey())
	require.NoError(t, err)

	t.Run("store and fetch", func(t *testing.T) {
		loi := fakedata.LocationOfInterest()

		res, err := pgSQL.StoreLOIs(ctx, loi)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, loi, res[0])

		found, err := pgSQL.LOIByID(ctx, loi.ID)
		require.NoError(t, err)
		require.Equal(t, loi, *found)
	})

	t.Run("generated ids and empty fields", func(t *testing.T) {
		area := domain.LocationOfInterest{
			SurveyID: fakedata.SurveyID,
			JobID:    fakedata.JobID,
			Geometry: domain.Geometry{Type: domain.GeometryPolygon, Coordinates: []domain.Coordinate{
				{Latitude: 1, Longitude: 1}, {Latitude: 1, Longitude: 2}, {Latitude: 2, Longitude: 2}, {Latitude: 1, Longitude: 1},
			}},
		}

		res, err := pgSQL.StoreLOIs(ctx, area, area)
		require.NoError(t, err)
		require.Len(t, res, 2)
		require.NotEqual(t, res[0].ID, res[1].ID)
		require.Empty(t, res[0].CustomID)
		require.Empty(t, res[0].Properties)
		require.Equal(t, domain.AuditInfo{}, res[0].Created)
	})

	t.Run("store empty lois", func(t *testing.T) {
		res, err := pgSQL.StoreLOIs(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestPgSQL_SurveyLOIs(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	_, err := pgSQL.StoreSurvey(ctx, fakedata.Survey())
	require.NoError(t, err)

	first := fakedata.LocationOfInterest()
	_, err = pgSQL.StoreLOIs(ctx, first)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	second := fakedata.LocationOfInterest()
	second.ID = domain.LOIID(uuid.New())
	_, err = pgSQL.StoreLOIs(ctx, second)
	require.NoError(t, err)

	deleted := fakedata.LocationOfInterest()
	deleted.ID = domain.LOIID(uuid.New())
	_, err = pgSQL.StoreLOIs(ctx, deleted)
	require.NoError(t, err)
	_, err = pgSQL.DB.ExecContext(ctx, `UPDATE locations_of_interest SET deleted_at = now() WHERE id = $1`,
		uuid.UUID(deleted.ID))
	require.NoError(t, err)

	lois, err := pgSQL.SurveyLOIs(ctx, fakedata.SurveyID)
	require.NoError(t, err)
	require.Len(t, lois, 2)
	require.Equal(t, first.ID, lois[0].ID)
	require.Equal(t, second.ID, lois[1].ID)

	found, err := pgSQL.LOIByID(ctx, deleted.ID)
	require.NoError(t, err)
	require.Nil(t, found)

	lois, err = pgSQL.SurveyLOIs(ctx, domain.SurveyID(uuid.New()))
	require.NoError(t, err)
	require.Empty(t, lois)
}
