// Package collection drives the collection of a job's task responses: the
// order tasks are shown in, which of them are visible, and when a response is
// required before moving on.
package collection

import (
	"errors"
	"ground/pkg/domain"
	"ground/pkg/serrors"
)

// RequiredMessage is shown to collectors when a required task has no response.
const RequiredMessage = "This field is required"

// ErrRequired is returned when a required task is left without a response.
var ErrRequired = errors.New(RequiredMessage)

// Visible reports whether task is shown given the responses collected so far.
func Visible(task domain.Task, data domain.SubmissionData) bool {
	if task.Condition == nil {
		return true
	}

	return task.Condition.Fulfilled(data.SelectedOptions)
}

// VisibleTasks returns the job's tasks in display order, dropping the tasks
// hidden by their conditions. The add-LOI task is kept only when withAddLOI
// is set.
func VisibleTasks(job domain.Job, data domain.SubmissionData, withAddLOI bool) []domain.Task {
	var out []domain.Task
	for _, task := range job.SortedTasks() {
		if task.AddLOITask && !withAddLOI {
			continue
		}
		if Visible(task, data) {
			out = append(out, task)
		}
	}

	return out
}

// ValidateTask checks the response recorded for a single task.
func ValidateTask(task domain.Task, data domain.SubmissionData) error {
	if response, ok := data[task.ID]; ok && response != nil {
		if err := domain.AcceptsTaskData(task, response); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid response for task %s", task.ID)
		}
	}
	if task.Required && task.Type != domain.TaskTypeInstructions && !data.Answered(task.ID) {
		return serrors.Wrap(serrors.ErrBadRequest, ErrRequired, "task %s", task.ID)
	}

	return nil
}

// Validate checks every visible task of job against data.
func Validate(job domain.Job, data domain.SubmissionData, withAddLOI bool) error {
	for _, task := range VisibleTasks(job, data, withAddLOI) {
		if err := ValidateTask(task, data); err != nil {
			return err
		}
	}

	return nil
}
