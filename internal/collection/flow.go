package collection

import (
	"errors"
	"ground/pkg/domain"
	"ground/pkg/serrors"
)

var (
	// ErrNoTasks is returned by NewFlow when the job has nothing to collect.
	ErrNoTasks = errors.New("job has no tasks to collect")
	// ErrFirstTask is returned by Previous on the first visible task.
	ErrFirstTask = errors.New("already on the first task")
	// ErrLastTask is returned by Next on the last visible task.
	ErrLastTask = errors.New("already on the last task")
	// ErrNotLastTask is returned by Finish before the last visible task.
	ErrNotLastTask = errors.New("not on the last task")
)

// Flow is a linear walk over the visible tasks of a job. Responses are kept
// when moving back and forth; tasks hidden by a condition are skipped.
type Flow struct {
	job  domain.Job
	loi  *domain.LocationOfInterest
	data domain.SubmissionData

	// current is the ID of the task shown.
	current string
}

// NewFlow starts collecting data for job. When loi is nil the job's add-LOI
// task is part of the flow and defines a new location of interest.
func NewFlow(job domain.Job, loi *domain.LocationOfInterest) (*Flow, error) {
	f := &Flow{job: job, loi: loi, data: domain.SubmissionData{}}

	tasks := f.visible()
	if len(tasks) == 0 {
		return nil, serrors.Wrap(serrors.ErrBadRequest, ErrNoTasks, "job %s", job.ID)
	}
	f.current = tasks[0].ID

	return f, nil
}

// Job returns the job data is collected for.
func (f *Flow) Job() domain.Job { return f.job }

// LOI returns the location of interest the flow was started for, or nil.
func (f *Flow) LOI() *domain.LocationOfInterest { return f.loi }

func (f *Flow) visible() []domain.Task {
	return VisibleTasks(f.job, f.data, f.loi == nil)
}

// position returns the index of the current task among the visible ones.
func (f *Flow) position(tasks []domain.Task) int {
	for i, task := range tasks {
		if task.ID == f.current {
			return i
		}
	}

	return -1
}

// Current returns the task shown.
func (f *Flow) Current() domain.Task {
	task, _ := f.job.Task(f.current)

	return task
}

// Position returns the index of the current task and the number of visible
// tasks. The count changes as responses reveal or hide conditional tasks.
func (f *Flow) Position() (int, int) {
	tasks := f.visible()

	return f.position(tasks), len(tasks)
}

// IsFirst reports whether no visible task precedes the current one.
func (f *Flow) IsFirst() bool {
	i, _ := f.Position()

	return i == 0
}

// IsLast reports whether no visible task follows the current one.
func (f *Flow) IsLast() bool {
	i, n := f.Position()

	return i == n-1
}

// SetResponse records the response of the current task. A nil response
// clears it.
func (f *Flow) SetResponse(data domain.TaskData) error {
	task := f.Current()
	if data == nil {
		delete(f.data, task.ID)

		return nil
	}
	if err := domain.AcceptsTaskData(task, data); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid response for task %s", task.ID)
	}
	f.data[task.ID] = data

	return nil
}

// Response returns the response recorded for a task.
func (f *Flow) Response(taskID string) (domain.TaskData, bool) {
	data, ok := f.data[taskID]

	return data, ok
}

// Next validates the current task and moves to the following visible one.
func (f *Flow) Next() error {
	if err := ValidateTask(f.Current(), f.data); err != nil {
		return err
	}

	tasks := f.visible()
	i := f.position(tasks)
	if i+1 >= len(tasks) {
		return ErrLastTask
	}
	f.current = tasks[i+1].ID

	return nil
}

// Previous moves to the preceding visible task without validating the
// current one.
func (f *Flow) Previous() error {
	tasks := f.visible()
	i := f.position(tasks)
	if i <= 0 {
		return ErrFirstTask
	}
	f.current = tasks[i-1].ID

	return nil
}

// Data returns the responses of the visible tasks.
func (f *Flow) Data() domain.SubmissionData {
	out := domain.SubmissionData{}
	for _, task := range f.visible() {
		if data, ok := f.data[task.ID]; ok {
			out[task.ID] = data
		}
	}

	return out
}

// Finish validates the last task and returns one delta per visible task that
// has a response, in display order.
func (f *Flow) Finish() ([]domain.TaskDataDelta, error) {
	if !f.IsLast() {
		return nil, ErrNotLastTask
	}
	if err := ValidateTask(f.Current(), f.data); err != nil {
		return nil, err
	}

	tasks := f.visible()
	for _, task := range tasks {
		if err := ValidateTask(task, f.data); err != nil {
			return nil, err
		}
	}

	deltas := make([]domain.TaskDataDelta, 0, len(tasks))
	for _, task := range tasks {
		data, ok := f.data[task.ID]
		if !ok {
			continue
		}
		deltas = append(deltas, domain.TaskDataDelta{TaskID: task.ID, TaskType: task.Type, NewData: data})
	}

	return deltas, nil
}

// NewLOIGeometry returns the geometry entered for the add-LOI task of a flow
// started without a location of interest.
func (f *Flow) NewLOIGeometry() (domain.Geometry, bool) {
	if f.loi != nil {
		return domain.Geometry{}, false
	}
	task, ok := f.job.AddLOITask()
	if !ok {
		return domain.Geometry{}, false
	}
	g, ok := f.data[task.ID].(domain.GeometryTaskData)
	if !ok || g.Geometry.IsEmpty() {
		return domain.Geometry{}, false
	}

	return g.Geometry, true
}
