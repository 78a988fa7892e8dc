package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"ground/pkg/document"
	"ground/pkg/domain"
	"strings"
	"time"

	"github.com/google/uuid"
)

// jsonb is a raw JSON document stored in a jsonb column.
type jsonb []byte

func (j jsonb) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}

	return string(j), nil
}

func (j *jsonb) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = jsonb(v)
	default:
		return fmt.Errorf("could not scan %T into jsonb", src)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	return &s.String
}

type PgUser struct {
	ID          string         `db:"id"`
	Email       sql.NullString `db:"email"`
	DisplayName sql.NullString `db:"display_name"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

// ToDomain converts the row through the remote user record so NULL columns
// collapse to empty strings.
func (p *PgUser) ToDomain() *domain.User {
	user := document.UserFromObject(&document.UserObject{
		ID:          &p.ID,
		Email:       nullStringPtr(p.Email),
		DisplayName: nullStringPtr(p.DisplayName),
	})

	return &user
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:          user.ID,
		Email:       nullString(user.Email),
		DisplayName: nullString(user.DisplayName),
	}
}

type PgSurvey struct {
	ID          uuid.UUID      `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Jobs        jsonb          `db:"jobs"`
	ACL         jsonb          `db:"acl"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSurvey) ToDomain() (*domain.Survey, error) {
	survey := domain.Survey{
		ID:          domain.SurveyID(p.ID),
		Title:       p.Title,
		Description: p.Description.String,
		Jobs:        map[string]domain.Job{},
		ACL:         map[string]domain.Role{},
	}
	if len(p.Jobs) > 0 {
		if err := json.Unmarshal(p.Jobs, &survey.Jobs); err != nil {
			return nil, fmt.Errorf("could not unmarshal survey jobs: %w", err)
		}
	}
	if len(p.ACL) > 0 {
		if err := json.Unmarshal(p.ACL, &survey.ACL); err != nil {
			return nil, fmt.Errorf("could not unmarshal survey acl: %w", err)
		}
	}

	return &survey, nil
}

// FromDomain converts survey into a row. ACL emails are lowercased so lookups
// by email can use the jsonb index.
func (p *PgSurvey) FromDomain(survey domain.Survey) error {
	jobs := survey.Jobs
	if jobs == nil {
		jobs = map[string]domain.Job{}
	}
	jobsJSON, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("could not marshal survey jobs: %w", err)
	}

	acl := make(map[string]domain.Role, len(survey.ACL))
	for email, role := range survey.ACL {
		acl[strings.ToLower(email)] = role
	}
	aclJSON, err := json.Marshal(acl)
	if err != nil {
		return fmt.Errorf("could not marshal survey acl: %w", err)
	}

	*p = PgSurvey{
		ID:          uuid.UUID(survey.ID),
		Title:       survey.Title,
		Description: nullString(survey.Description),
		Jobs:        jobsJSON,
		ACL:         aclJSON,
	}

	return nil
}

type PgLOI struct {
	ID           uuid.UUID      `db:"id"`
	SurveyID     uuid.UUID      `db:"survey_id"`
	JobID        string         `db:"job_id"`
	CustomID     sql.NullString `db:"custom_id"`
	Geometry     jsonb          `db:"geometry"`
	Properties   jsonb          `db:"properties"`
	Created      jsonb          `db:"created"`
	LastModified jsonb          `db:"last_modified"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgLOI) ToDomain() (*domain.LocationOfInterest, error) {
	geometry, err := document.UnmarshalGeometry(p.Geometry)
	if err != nil {
		return nil, fmt.Errorf("could not decode loi geometry: %w", err)
	}
	properties := map[string]string{}
	if len(p.Properties) > 0 {
		if err := json.Unmarshal(p.Properties, &properties); err != nil {
			return nil, fmt.Errorf("could not unmarshal loi properties: %w", err)
		}
	}
	created, err := document.UnmarshalAuditInfo(p.Created)
	if err != nil {
		return nil, fmt.Errorf("could not decode loi created: %w", err)
	}
	lastModified, err := document.UnmarshalAuditInfo(p.LastModified)
	if err != nil {
		return nil, fmt.Errorf("could not decode loi last modified: %w", err)
	}

	return &domain.LocationOfInterest{
		ID:           domain.LOIID(p.ID),
		SurveyID:     domain.SurveyID(p.SurveyID),
		JobID:        p.JobID,
		CustomID:     p.CustomID.String,
		Geometry:     geometry,
		Properties:   properties,
		Created:      created,
		LastModified: lastModified,
	}, nil
}

func (p *PgLOI) FromDomain(loi domain.LocationOfInterest) error {
	properties := loi.Properties
	if properties == nil {
		properties = map[string]string{}
	}
	propertiesJSON, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("could not marshal loi properties: %w", err)
	}
	created, err := document.MarshalAuditInfo(loi.Created)
	if err != nil {
		return fmt.Errorf("could not encode loi created: %w", err)
	}
	lastModified, err := document.MarshalAuditInfo(loi.LastModified)
	if err != nil {
		return fmt.Errorf("could not encode loi last modified: %w", err)
	}

	*p = PgLOI{
		ID:           uuid.UUID(loi.ID),
		SurveyID:     uuid.UUID(loi.SurveyID),
		JobID:        loi.JobID,
		CustomID:     nullString(loi.CustomID),
		Geometry:     document.MarshalGeometry(loi.Geometry),
		Properties:   propertiesJSON,
		Created:      created,
		LastModified: lastModified,
	}

	return nil
}

type PgSubmission struct {
	ID           uuid.UUID `db:"id"`
	SurveyID     uuid.UUID `db:"survey_id"`
	JobID        string    `db:"job_id"`
	LOIID        uuid.UUID `db:"loi_id"`
	Created      jsonb     `db:"created"`
	LastModified jsonb     `db:"last_modified"`
	Data         jsonb     `db:"data"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgSubmission) ToDomain() (*domain.Submission, error) {
	created, err := document.UnmarshalAuditInfo(p.Created)
	if err != nil {
		return nil, fmt.Errorf("could not decode submission created: %w", err)
	}
	lastModified, err := document.UnmarshalAuditInfo(p.LastModified)
	if err != nil {
		return nil, fmt.Errorf("could not decode submission last modified: %w", err)
	}
	data, err := document.DecodeSubmissionData(p.Data)
	if err != nil {
		return nil, fmt.Errorf("could not decode submission data: %w", err)
	}

	return &domain.Submission{
		ID:           domain.SubmissionID(p.ID),
		SurveyID:     domain.SurveyID(p.SurveyID),
		JobID:        p.JobID,
		LOIID:        domain.LOIID(p.LOIID),
		Created:      created,
		LastModified: lastModified,
		Data:         data,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
		DeletedAt:    p.DeletedAt.Time,
	}, nil
}

func (p *PgSubmission) FromDomain(submission domain.Submission) error {
	created, err := document.MarshalAuditInfo(submission.Created)
	if err != nil {
		return fmt.Errorf("could not encode submission created: %w", err)
	}
	lastModified, err := document.MarshalAuditInfo(submission.LastModified)
	if err != nil {
		return fmt.Errorf("could not encode submission last modified: %w", err)
	}
	data, err := document.EncodeSubmissionData(submission.Data)
	if err != nil {
		return fmt.Errorf("could not encode submission data: %w", err)
	}

	*p = PgSubmission{
		ID:           uuid.UUID(submission.ID),
		SurveyID:     uuid.UUID(submission.SurveyID),
		JobID:        submission.JobID,
		LOIID:        uuid.UUID(submission.LOIID),
		Created:      created,
		LastModified: lastModified,
		Data:         data,
		CreatedAt:    submission.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  submission.UpdatedAt,
			Valid: !submission.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  submission.DeletedAt,
			Valid: !submission.DeletedAt.IsZero(),
		},
	}

	return nil
}

type PgMutation struct {
	ID              int64     `db:"id"            goqu:"skipinsert"`
	Type            string    `db:"type"`
	SubmissionID    uuid.UUID `db:"submission_id"`
	SurveyID        uuid.UUID `db:"survey_id"`
	JobID           string    `db:"job_id"`
	LOIID           uuid.UUID `db:"loi_id"`
	UserID          string    `db:"user_id"`
	ClientTimestamp time.Time `db:"client_timestamp"`
	Deltas          jsonb     `db:"deltas"`

	SyncStatus string         `db:"sync_status"`
	RetryCount int            `db:"retry_count" goqu:"skipinsert"`
	LastError  sql.NullString `db:"last_error"  goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgMutation) ToDomain() (*domain.SubmissionMutation, error) {
	deltas, err := document.DecodeDeltas(p.Deltas)
	if err != nil {
		return nil, fmt.Errorf("could not decode mutation deltas: %w", err)
	}

	return &domain.SubmissionMutation{
		ID:              domain.MutationID(p.ID),
		Type:            domain.MutationType(p.Type),
		SubmissionID:    domain.SubmissionID(p.SubmissionID),
		SurveyID:        domain.SurveyID(p.SurveyID),
		JobID:           p.JobID,
		LOIID:           domain.LOIID(p.LOIID),
		UserID:          p.UserID,
		ClientTimestamp: p.ClientTimestamp,
		Deltas:          deltas,
		SyncStatus:      domain.SyncStatus(p.SyncStatus),
		RetryCount:      p.RetryCount,
		LastError:       p.LastError.String,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt.Time,
	}, nil
}

func (p *PgMutation) FromDomain(mutation domain.SubmissionMutation) error {
	deltas, err := document.EncodeDeltas(mutation.Deltas)
	if err != nil {
		return fmt.Errorf("could not encode mutation deltas: %w", err)
	}
	status := mutation.SyncStatus
	if status == "" {
		status = domain.SyncStatusPending
	}

	*p = PgMutation{
		ID:              int64(mutation.ID),
		Type:            string(mutation.Type),
		SubmissionID:    uuid.UUID(mutation.SubmissionID),
		SurveyID:        uuid.UUID(mutation.SurveyID),
		JobID:           mutation.JobID,
		LOIID:           uuid.UUID(mutation.LOIID),
		UserID:          mutation.UserID,
		ClientTimestamp: mutation.ClientTimestamp,
		Deltas:          deltas,
		SyncStatus:      string(status),
		RetryCount:      mutation.RetryCount,
		LastError:       nullString(mutation.LastError),
	}

	return nil
}

func pgSurveysToDomain(rows []PgSurvey) ([]domain.Survey, error) {
	out := make([]domain.Survey, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func domainLOIsToPg(lois []domain.LocationOfInterest) ([]PgLOI, error) {
	out := make([]PgLOI, len(lois))
	for i := range out {
		if err := out[i].FromDomain(lois[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgLOIsToDomain(rows []PgLOI) ([]domain.LocationOfInterest, error) {
	out := make([]domain.LocationOfInterest, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func pgSubmissionsToDomain(rows []PgSubmission) ([]domain.Submission, error) {
	out := make([]domain.Submission, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func domainMutationsToPg(mutations []domain.SubmissionMutation) ([]PgMutation, error) {
	out := make([]PgMutation, len(mutations))
	for i := range out {
		if err := out[i].FromDomain(mutations[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgMutationsToDomain(rows []PgMutation) ([]domain.SubmissionMutation, error) {
	out := make([]domain.SubmissionMutation, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
