package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrTaskDataType is returned when a response does not fit the task type.
	ErrTaskDataType = errors.New("response does not match task type")
	// ErrUnknownOption is returned when a multiple choice response selects a
	// missing option.
	ErrUnknownOption = errors.New("unknown option")
	// ErrTooManyOptions is returned when a single-select task gets more than
	// one option.
	ErrTooManyOptions = errors.New("too many options selected")
	// ErrNotFinite is returned for NaN or infinite numbers.
	ErrNotFinite = errors.New("number is not finite")
)

// TaskData is the response collected for a single task.
type TaskData interface {
	// IsEmpty reports whether the response carries no answer.
	IsEmpty() bool

	isTaskData()
}

// TextTaskData is the response of a TEXT task.
type TextTaskData struct{ Text string }

// NumberTaskData is the response of a NUMBER task.
type NumberTaskData struct{ Value float64 }

// DateTimeTaskData is the response of a DATE or TIME task.
type DateTimeTaskData struct{ Time time.Time }

// MultipleChoiceTaskData is the response of a MULTIPLE_CHOICE task.
type MultipleChoiceTaskData struct {
	SelectedOptionIDs []string
	// OtherText is the free text entered for the "other" option.
	OtherText string
}

// PhotoTaskData references an uploaded photo.
type PhotoTaskData struct{ Path string }

// GeometryTaskData is the response of DROP_PIN, DRAW_AREA and CAPTURE_LOCATION tasks.
type GeometryTaskData struct{ Geometry Geometry }

// SkippedTaskData marks an optional task the collector chose to skip.
type SkippedTaskData struct{}

func (d TextTaskData) IsEmpty() bool           { return strings.TrimSpace(d.Text) == "" }
func (d NumberTaskData) IsEmpty() bool         { return false }
func (d DateTimeTaskData) IsEmpty() bool       { return d.Time.IsZero() }
func (d MultipleChoiceTaskData) IsEmpty() bool { return len(d.SelectedOptionIDs) == 0 && d.OtherText == "" }
func (d PhotoTaskData) IsEmpty() bool          { return d.Path == "" }
func (d GeometryTaskData) IsEmpty() bool       { return d.Geometry.IsEmpty() }
func (d SkippedTaskData) IsEmpty() bool        { return true }

func (TextTaskData) isTaskData()           {}
func (NumberTaskData) isTaskData()         {}
func (DateTimeTaskData) isTaskData()       {}
func (MultipleChoiceTaskData) isTaskData() {}
func (PhotoTaskData) isTaskData()          {}
func (GeometryTaskData) isTaskData()       {}
func (SkippedTaskData) isTaskData()        {}

// AcceptsTaskData checks that data is a valid response for task. Skipped data
// is accepted for every task type; requiredness is checked elsewhere.
func AcceptsTaskData(task Task, data TaskData) error {
	if _, ok := data.(SkippedTaskData); ok {
		return nil
	}

	mismatch := func() error {
		return fmt.Errorf("%w: %T for %s task %q", ErrTaskDataType, data, task.Type, task.ID)
	}

	switch task.Type {
	case TaskTypeText:
		if _, ok := data.(TextTaskData); !ok {
			return mismatch()
		}
	case TaskTypeNumber:
		n, ok := data.(NumberTaskData)
		if !ok {
			return mismatch()
		}
		if !finite(n.Value) {
			return fmt.Errorf("%w: task %q", ErrNotFinite, task.ID)
		}
	case TaskTypeDate, TaskTypeTime:
		if _, ok := data.(DateTimeTaskData); !ok {
			return mismatch()
		}
	case TaskTypePhoto:
		if _, ok := data.(PhotoTaskData); !ok {
			return mismatch()
		}
	case TaskTypeDropPin, TaskTypeDrawArea, TaskTypeCaptureLocation:
		g, ok := data.(GeometryTaskData)
		if !ok {
			return mismatch()
		}
		if err := g.Geometry.Validate(); err != nil {
			return fmt.Errorf("task %q: %w", task.ID, err)
		}
		if task.Type == TaskTypeDrawArea && g.Geometry.Type != GeometryPolygon {
			return fmt.Errorf("%w: %s task %q needs a polygon", ErrTaskDataType, task.Type, task.ID)
		}
	case TaskTypeMultipleChoice:
		mc, ok := data.(MultipleChoiceTaskData)
		if !ok {
			return mismatch()
		}

		return acceptsMultipleChoice(task, mc)
	default:
		return mismatch()
	}

	return nil
}

func acceptsMultipleChoice(task Task, data MultipleChoiceTaskData) error {
	if task.MultipleChoice == nil {
		return fmt.Errorf("%w: task %q has no options", ErrUnknownOption, task.ID)
	}
	for _, id := range data.SelectedOptionIDs {
		if _, ok := task.MultipleChoice.Option(id); !ok {
			return fmt.Errorf("%w: %q in task %q", ErrUnknownOption, id, task.ID)
		}
	}
	if data.OtherText != "" && !task.MultipleChoice.HasOtherOption {
		return fmt.Errorf("%w: task %q has no other option", ErrUnknownOption, task.ID)
	}

	selected := len(data.SelectedOptionIDs)
	if data.OtherText != "" {
		selected++
	}
	if task.MultipleChoice.Cardinality == SelectOne && selected > 1 {
		return fmt.Errorf("%w: task %q accepts one option", ErrTooManyOptions, task.ID)
	}

	return nil
}

// TaskDataDelta is a change to the response of one task.
type TaskDataDelta struct {
	TaskID   string
	TaskType TaskType
	// NewData replaces the previous response. Nil removes it.
	NewData TaskData
}

// SubmissionData maps task IDs to their responses.
type SubmissionData map[string]TaskData

// Apply returns a copy of d with deltas applied in order.
func (d SubmissionData) Apply(deltas ...TaskDataDelta) SubmissionData {
	out := make(SubmissionData, len(d)+len(deltas))
	for k, v := range d {
		out[k] = v
	}
	for _, delta := range deltas {
		if delta.NewData == nil {
			delete(out, delta.TaskID)

			continue
		}
		out[delta.TaskID] = delta.NewData
	}

	return out
}

// Answered reports whether the task has a non-empty response.
func (d SubmissionData) Answered(taskID string) bool {
	data, ok := d[taskID]

	return ok && data != nil && !data.IsEmpty()
}

// SelectedOptions returns the option IDs chosen for a multiple choice task.
func (d SubmissionData) SelectedOptions(taskID string) []string {
	mc, ok := d[taskID].(MultipleChoiceTaskData)
	if !ok {
		return nil
	}

	return mc.SelectedOptionIDs
}
