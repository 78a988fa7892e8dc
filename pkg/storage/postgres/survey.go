package postgres

import (
	"context"
	"fmt"
	"ground/pkg/domain"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	surveysTable = "surveys"
)

// StoreSurvey inserts the survey or replaces the definition of an existing one.
// A zero ID is replaced by a random one.
func (p *PgSQL) StoreSurvey(ctx context.Context, survey domain.Survey) (*domain.Survey, error) {
	if uuid.UUID(survey.ID) == uuid.Nil {
		survey.ID = domain.SurveyID(uuid.New())
	}

	var row PgSurvey
	if err := row.FromDomain(survey); err != nil {
		return nil, err
	}

	var result PgSurvey
	if _, err := p.Builder.Insert(surveysTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("id", goqu.Record{
			"title":       goqu.I("excluded.title"),
			"description": goqu.I("excluded.description"),
			"jobs":        goqu.I("excluded.jobs"),
			"acl":         goqu.I("excluded.acl"),
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgSurvey{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store survey into pg: %w", err)
	}

	return result.ToDomain()
}

// SurveyByID returns the survey with the given ID, or nil when missing.
func (p *PgSQL) SurveyByID(ctx context.Context, id domain.SurveyID) (*domain.Survey, error) {
	var row PgSurvey
	found, err := p.Builder.From(surveysTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch survey by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserSurveys returns the surveys whose ACL has an entry for email, ordered by
// title then ID.
func (p *PgSQL) UserSurveys(ctx context.Context, email string) ([]domain.Survey, error) {
	if email == "" {
		return nil, nil
	}

	var rows []PgSurvey
	if err := p.Builder.From(surveysTable).
		Where(goqu.L("jsonb_exists(acl, ?)", strings.ToLower(email))).
		Order(goqu.I("title").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user surveys from pg: %w", err)
	}

	return pgSurveysToDomain(rows)
}
