package postgres

import (
	"context"
	"fmt"
	"ground/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	loisTable = "locations_of_interest"
)

// StoreLOIs inserts the given LOIs. LOIs with a zero ID get a random one.
func (p *PgSQL) StoreLOIs(ctx context.Context, lois ...domain.LocationOfInterest) ([]domain.LocationOfInterest, error) {
	if len(lois) == 0 {
		return nil, nil
	}

	withIDs := make([]domain.LocationOfInterest, len(lois))
	for i, loi := range lois {
		if uuid.UUID(loi.ID) == uuid.Nil {
			loi.ID = domain.LOIID(uuid.New())
		}
		withIDs[i] = loi
	}

	pgLOIs, err := domainLOIsToPg(withIDs)
	if err != nil {
		return nil, err
	}

	var result []PgLOI
	if err := p.Builder.Insert(loisTable).
		Rows(pgLOIs).
		Returning(&PgLOI{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store lois into pg: %w", err)
	}

	return pgLOIsToDomain(result)
}

// LOIByID returns a LOI by its ID, excluding soft-deleted rows.
func (p *PgSQL) LOIByID(ctx context.Context, id domain.LOIID) (*domain.LocationOfInterest, error) {
	var row PgLOI
	found, err := p.Builder.From(loisTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch loi by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SurveyLOIs returns the live LOIs of a survey, oldest first.
func (p *PgSQL) SurveyLOIs(ctx context.Context, surveyID domain.SurveyID) ([]domain.LocationOfInterest, error) {
	var rows []PgLOI
	if err := p.Builder.From(loisTable).
		Where(
			goqu.I("survey_id").Eq(uuid.UUID(surveyID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch survey lois from pg: %w", err)
	}

	return pgLOIsToDomain(rows)
}
