// Package fakedata provides canonical instances of the domain entities for
// tests and local development databases. Every constructor returns a fresh
// value, so callers may modify what they get.
package fakedata

import (
	"ground/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// Stable identifiers shared by the fixtures.
var (
	SurveyID     = domain.SurveyID(uuid.MustParse("6d1f5bd3-0c3e-4a4a-9c48-3a8f0c1f0001"))     //nolint: gochecknoglobals
	LOIID        = domain.LOIID(uuid.MustParse("6d1f5bd3-0c3e-4a4a-9c48-3a8f0c1f0002"))        //nolint: gochecknoglobals
	SubmissionID = domain.SubmissionID(uuid.MustParse("6d1f5bd3-0c3e-4a4a-9c48-3a8f0c1f0003")) //nolint: gochecknoglobals
)

const (
	UserID          = "user_id"
	UserEmail       = "user@gmail.com"
	UserDisplayName = "User"

	JobID   = "job_id"
	JobName = "Job"

	TaskID          = "task_id"
	ChoiceTaskID    = "choice_task_id"
	ConditionTaskID = "condition_task_id"
	AddLOITaskID    = "add_loi_task_id"

	OptionYesID = "option_yes"
	OptionNoID  = "option_no"

	SurveyTitle       = "Survey title"
	SurveyDescription = "Test survey description"
)

// Timestamp is the client time used by fixtures.
var Timestamp = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC) //nolint: gochecknoglobals

// User returns the fixture user.
func User() domain.User {
	return domain.User{ID: UserID, Email: UserEmail, DisplayName: UserDisplayName}
}

// AuditInfo returns audit info attributed to User at Timestamp.
func AuditInfo() domain.AuditInfo {
	return domain.NewAuditInfo(User(), Timestamp)
}

// Task returns a required text task.
func Task() domain.Task {
	return domain.Task{
		ID:       TaskID,
		Index:    1,
		Type:     domain.TaskTypeText,
		Label:    "Text label",
		Required: true,
	}
}

// ChoiceTask returns an optional single-select task with yes/no options.
func ChoiceTask() domain.Task {
	return domain.Task{
		ID:    ChoiceTaskID,
		Index: 2,
		Type:  domain.TaskTypeMultipleChoice,
		Label: "Is the site accessible?",
		MultipleChoice: &domain.MultipleChoice{
			Cardinality: domain.SelectOne,
			Options: []domain.Option{
				{ID: OptionYesID, Code: "Y", Label: "Yes"},
				{ID: OptionNoID, Code: "N", Label: "No"},
			},
		},
	}
}

// ConditionalTask returns a required number task shown only when the choice
// task is answered "yes".
func ConditionalTask() domain.Task {
	return domain.Task{
		ID:       ConditionTaskID,
		Index:    3,
		Type:     domain.TaskTypeNumber,
		Label:    "How many entrances?",
		Required: true,
		Condition: &domain.Condition{
			MatchType: domain.MatchAny,
			Expressions: []domain.Expression{{
				Type:      domain.AnyOfSelected,
				TaskID:    ChoiceTaskID,
				OptionIDs: []string{OptionYesID},
			}},
		},
	}
}

// AddLOITask returns a drop pin task defining a new location of interest.
func AddLOITask() domain.Task {
	return domain.Task{
		ID:         AddLOITaskID,
		Index:      0,
		Type:       domain.TaskTypeDropPin,
		Label:      "Drop a pin",
		Required:   true,
		AddLOITask: true,
	}
}

// Job returns a job with the text, choice and conditional tasks.
func Job() domain.Job {
	return JobWithTasks(Task(), ChoiceTask(), ConditionalTask())
}

// JobWithTasks returns the fixture job holding the given tasks.
func JobWithTasks(tasks ...domain.Task) domain.Job {
	job := domain.Job{ID: JobID, Name: JobName, Tasks: make(map[string]domain.Task, len(tasks))}
	for _, task := range tasks {
		job.Tasks[task.ID] = task
	}

	return job
}

// Survey returns a survey holding Job and granting User the owner role.
func Survey() domain.Survey {
	return SurveyWithJobs(Job())
}

// SurveyWithJobs returns the fixture survey holding the given jobs.
func SurveyWithJobs(jobs ...domain.Job) domain.Survey {
	survey := domain.Survey{
		ID:          SurveyID,
		Title:       SurveyTitle,
		Description: SurveyDescription,
		Jobs:        make(map[string]domain.Job, len(jobs)),
		ACL:         map[string]domain.Role{UserEmail: domain.RoleOwner},
	}
	for _, job := range jobs {
		survey.Jobs[job.ID] = job
	}

	return survey
}

// LocationOfInterest returns a point LOI of Job.
func LocationOfInterest() domain.LocationOfInterest {
	return domain.LocationOfInterest{
		ID:           LOIID,
		SurveyID:     SurveyID,
		JobID:        JobID,
		CustomID:     "loi-1",
		Geometry:     domain.NewPoint(45.5017, -73.5673),
		Properties:   map[string]string{"name": "Fountain"},
		Created:      AuditInfo(),
		LastModified: AuditInfo(),
	}
}

// SubmissionData returns responses that satisfy Job.
func SubmissionData() domain.SubmissionData {
	return domain.SubmissionData{
		TaskID:          domain.TextTaskData{Text: "Some text"},
		ChoiceTaskID:    domain.MultipleChoiceTaskData{SelectedOptionIDs: []string{OptionYesID}},
		ConditionTaskID: domain.NumberTaskData{Value: 2},
	}
}

// Submission returns a submission of LocationOfInterest with SubmissionData.
func Submission() domain.Submission {
	return domain.Submission{
		ID:           SubmissionID,
		SurveyID:     SurveyID,
		JobID:        JobID,
		LOIID:        LOIID,
		Created:      AuditInfo(),
		LastModified: AuditInfo(),
		Data:         SubmissionData(),
	}
}

// Deltas returns the deltas producing SubmissionData.
func Deltas() []domain.TaskDataDelta {
	return []domain.TaskDataDelta{
		{TaskID: TaskID, TaskType: domain.TaskTypeText, NewData: domain.TextTaskData{Text: "Some text"}},
		{TaskID: ChoiceTaskID, TaskType: domain.TaskTypeMultipleChoice, NewData: domain.MultipleChoiceTaskData{
			SelectedOptionIDs: []string{OptionYesID},
		}},
		{TaskID: ConditionTaskID, TaskType: domain.TaskTypeNumber, NewData: domain.NumberTaskData{Value: 2}},
	}
}

// Mutation returns a pending CREATE mutation of Submission.
func Mutation() domain.SubmissionMutation {
	return domain.SubmissionMutation{
		Type:            domain.MutationCreate,
		SubmissionID:    SubmissionID,
		SurveyID:        SurveyID,
		JobID:           JobID,
		LOIID:           LOIID,
		UserID:          UserID,
		ClientTimestamp: Timestamp,
		Deltas:          Deltas(),
		SyncStatus:      domain.SyncStatusPending,
	}
}
