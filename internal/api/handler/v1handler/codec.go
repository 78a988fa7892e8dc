package v1handler

import (
	"ground/internal/collector"
	"ground/pkg/document"
	"ground/pkg/domain"
	"io"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// maxBodySize bounds request bodies read by the decoders.
const maxBodySize = 4 << 20

// userBody encodes a user profile.
type userBody domain.User

func (u userBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(u.ID)
	e.FieldStart("email")
	e.Str(u.Email)
	e.FieldStart("displayName")
	e.Str(u.DisplayName)
	e.ObjEnd()
}

func encodeAuditInfo(e *jx.Encoder, a domain.AuditInfo) {
	e.ObjStart()
	e.FieldStart("user")
	userBody(a.User).Encode(e)
	encodeTime(e, "clientTimestamp", a.ClientTimestamp)
	encodeTime(e, "serverTimestamp", a.ServerTimestamp)
	e.ObjEnd()
}

// encodeTime writes an RFC3339 field, or null for the zero time.
func encodeTime(e *jx.Encoder, field string, t time.Time) {
	e.FieldStart(field)
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

// surveyBody encodes a survey as seen by one user. Jobs are only included in
// full survey responses.
type surveyBody struct {
	survey   domain.Survey
	role     domain.Role
	withJobs bool
}

func (s surveyBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.survey.ID.String())
	e.FieldStart("title")
	e.Str(s.survey.Title)
	e.FieldStart("description")
	e.Str(s.survey.Description)
	e.FieldStart("role")
	e.Str(string(s.role))
	if s.withJobs {
		e.FieldStart("jobs")
		e.ArrStart()
		for _, job := range s.survey.SortedJobs() {
			encodeJob(e, job)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

func encodeJob(e *jx.Encoder, job domain.Job) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(job.ID)
	e.FieldStart("name")
	e.Str(job.Name)
	e.FieldStart("tasks")
	e.ArrStart()
	for _, task := range job.SortedTasks() {
		encodeTask(e, task)
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeTask(e *jx.Encoder, task domain.Task) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(task.ID)
	e.FieldStart("index")
	e.Int(task.Index)
	e.FieldStart("type")
	e.Str(string(task.Type))
	e.FieldStart("label")
	e.Str(task.Label)
	e.FieldStart("required")
	e.Bool(task.Required)
	e.FieldStart("addLoi")
	e.Bool(task.AddLOITask)

	if mc := task.MultipleChoice; mc != nil {
		e.FieldStart("multipleChoice")
		e.ObjStart()
		e.FieldStart("cardinality")
		e.Str(string(mc.Cardinality))
		e.FieldStart("hasOther")
		e.Bool(mc.HasOtherOption)
		e.FieldStart("options")
		e.ArrStart()
		for _, option := range mc.Options {
			e.ObjStart()
			e.FieldStart("id")
			e.Str(option.ID)
			e.FieldStart("code")
			e.Str(option.Code)
			e.FieldStart("label")
			e.Str(option.Label)
			e.ObjEnd()
		}
		e.ArrEnd()
		e.ObjEnd()
	}

	if cond := task.Condition; cond != nil {
		e.FieldStart("condition")
		e.ObjStart()
		e.FieldStart("matchType")
		e.Str(string(cond.MatchType))
		e.FieldStart("expressions")
		e.ArrStart()
		for _, expr := range cond.Expressions {
			e.ObjStart()
			e.FieldStart("type")
			e.Str(string(expr.Type))
			e.FieldStart("taskId")
			e.Str(expr.TaskID)
			e.FieldStart("optionIds")
			e.ArrStart()
			for _, id := range expr.OptionIDs {
				e.Str(id)
			}
			e.ArrEnd()
			e.ObjEnd()
		}
		e.ArrEnd()
		e.ObjEnd()
	}
	e.ObjEnd()
}

// surveyListBody encodes the surveys shared with a user.
type surveyListBody struct {
	surveys []domain.Survey
	email   string
}

func (s surveyListBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, survey := range s.surveys {
		role, _ := survey.RoleOf(s.email)
		surveyBody{survey: survey, role: role}.Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// overviewBody encodes a survey with its locations of interest.
type overviewBody struct {
	overview *collector.Overview
	email    string
}

func (o overviewBody) Encode(e *jx.Encoder) {
	role, _ := o.overview.Survey.RoleOf(o.email)

	e.ObjStart()
	e.FieldStart("survey")
	surveyBody{survey: o.overview.Survey, role: role, withJobs: true}.Encode(e)
	e.FieldStart("lois")
	e.ArrStart()
	for _, loi := range o.overview.LOIs {
		loiBody(loi).Encode(e)
	}
	e.ArrEnd()
	e.ObjEnd()
}

// loiBody encodes a location of interest.
type loiBody domain.LocationOfInterest

func (l loiBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(l.ID.String())
	e.FieldStart("surveyId")
	e.Str(l.SurveyID.String())
	e.FieldStart("jobId")
	e.Str(l.JobID)
	e.FieldStart("customId")
	e.Str(l.CustomID)
	e.FieldStart("geometry")
	document.EncodeGeometry(e, l.Geometry)
	e.FieldStart("properties")
	e.ObjStart()
	for k, v := range l.Properties {
		e.FieldStart(k)
		e.Str(v)
	}
	e.ObjEnd()
	e.FieldStart("created")
	encodeAuditInfo(e, l.Created)
	e.FieldStart("lastModified")
	encodeAuditInfo(e, l.LastModified)
	e.ObjEnd()
}

// submissionBody encodes a submission with its responses.
type submissionBody domain.Submission

func (s submissionBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("id")
	e.Str(s.ID.String())
	e.FieldStart("surveyId")
	e.Str(s.SurveyID.String())
	e.FieldStart("jobId")
	e.Str(s.JobID)
	e.FieldStart("loiId")
	e.Str(s.LOIID.String())
	e.FieldStart("created")
	encodeAuditInfo(e, s.Created)
	e.FieldStart("lastModified")
	encodeAuditInfo(e, s.LastModified)
	e.FieldStart("data")
	e.ObjStart()
	for taskID, data := range s.Data {
		// data decoded from storage always has a known type
		e.FieldStart(taskID)
		if err := document.EncodeTaskData(e, data); err != nil {
			e.Null()
		}
	}
	e.ObjEnd()
	e.ObjEnd()
}

// submissionListBody encodes a page of submissions.
type submissionListBody struct {
	submissions []domain.Submission
	nextCursor  string
}

func (s submissionListBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, submission := range s.submissions {
		submissionBody(submission).Encode(e)
	}
	e.ArrEnd()
	e.FieldStart("nextCursor")
	if s.nextCursor == "" {
		e.Null()
	} else {
		e.Str(s.nextCursor)
	}
	e.ObjEnd()
}

// mutationListBody encodes the receipt of accepted mutations.
type mutationListBody []domain.SubmissionMutation

func (m mutationListBody) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("items")
	e.ArrStart()
	for _, mutation := range m {
		e.ObjStart()
		e.FieldStart("id")
		e.Int64(int64(mutation.ID))
		e.FieldStart("submissionId")
		e.Str(mutation.SubmissionID.String())
		e.FieldStart("type")
		e.Str(string(mutation.Type))
		e.FieldStart("syncStatus")
		e.Str(string(mutation.SyncStatus))
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

// newDecoder returns a decoder over a size-limited request body.
func newDecoder(body io.Reader) *jx.Decoder {
	return jx.Decode(io.LimitReader(body, maxBodySize), 1024)
}

// decodeLOI reads an add-LOI request:
// {"jobId", "customId", "geometry", "properties", "clientTimestamp"}.
func decodeLOI(d *jx.Decoder) (domain.LocationOfInterest, error) {
	var loi domain.LocationOfInterest
	err := d.Obj(func(d *jx.Decoder, key string) (err error) {
		switch key {
		case "jobId":
			loi.JobID, err = d.Str()
		case "customId":
			loi.CustomID, err = d.Str()
		case "geometry":
			loi.Geometry, err = document.DecodeGeometry(d)
		case "properties":
			loi.Properties = make(map[string]string)
			err = d.Obj(func(d *jx.Decoder, key string) error {
				v, err := d.Str()
				loi.Properties[key] = v

				return err
			})
		case "clientTimestamp":
			loi.Created.ClientTimestamp, err = decodeTime(d)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		return domain.LocationOfInterest{}, errors.Wrap(err, "decode LOI")
	}
	if loi.JobID == "" {
		return domain.LocationOfInterest{}, errors.New("missing jobId")
	}

	return loi, nil
}

// decodeMutations reads a mutation upload: {"mutations": [...]}.
func decodeMutations(d *jx.Decoder) ([]domain.SubmissionMutation, error) {
	var out []domain.SubmissionMutation
	err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "mutations" {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			m, err := decodeMutation(d)
			if err != nil {
				return errors.Wrapf(err, "mutation %d", len(out))
			}
			out = append(out, m)

			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode mutations")
	}

	return out, nil
}

func decodeMutation(d *jx.Decoder) (domain.SubmissionMutation, error) {
	var m domain.SubmissionMutation
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "type":
			s, err := d.Str()
			m.Type = domain.MutationType(s)

			return err
		case "submissionId":
			id, err := decodeUUID(d)
			m.SubmissionID = domain.SubmissionID(id)

			return err
		case "surveyId":
			id, err := decodeUUID(d)
			m.SurveyID = domain.SurveyID(id)

			return err
		case "jobId":
			s, err := d.Str()
			m.JobID = s

			return err
		case "loiId":
			id, err := decodeUUID(d)
			m.LOIID = domain.LOIID(id)

			return err
		case "clientTimestamp":
			t, err := decodeTime(d)
			m.ClientTimestamp = t

			return err
		case "deltas":
			deltas, err := document.ReadDeltas(d)
			m.Deltas = deltas

			return err
		default:
			return d.Skip()
		}
	})

	return m, err
}

func decodeUUID(d *jx.Decoder) (uuid.UUID, error) {
	s, err := d.Str()
	if err != nil {
		return uuid.UUID{}, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.UUID{}, errors.Wrapf(err, "parse id %q", s)
	}

	return id, nil
}

func decodeTime(d *jx.Decoder) (time.Time, error) {
	if d.Next() == jx.Null {
		return time.Time{}, d.Null()
	}
	s, err := d.Str()
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse time %q", s)
	}

	return t, nil
}
