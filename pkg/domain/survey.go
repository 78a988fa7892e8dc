package domain

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// SurveyID uniquely identifies a survey.
type SurveyID uuid.UUID

// String returns the canonical textual form of the ID.
func (id SurveyID) String() string { return uuid.UUID(id).String() }

// Role is the access level of a user within a survey.
type Role string

const (
	RoleOwner           Role = "OWNER"
	RoleSurveyOrganizer Role = "SURVEY_ORGANIZER"
	RoleDataCollector   Role = "DATA_COLLECTOR"
	RoleViewer          Role = "VIEWER"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleSurveyOrganizer, RoleDataCollector, RoleViewer:
		return true
	}

	return false
}

// Survey is a data collection project made of jobs. Access is granted per
// email address through ACL.
type Survey struct {
	ID          SurveyID        `json:"-"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Jobs        map[string]Job  `json:"jobs"`
	ACL         map[string]Role `json:"acl"`
}

// Job returns the job with the given ID.
func (s Survey) Job(id string) (Job, bool) {
	job, ok := s.Jobs[id]

	return job, ok
}

// SortedJobs returns the survey jobs ordered by name, then ID.
func (s Survey) SortedJobs() []Job {
	jobs := make([]Job, 0, len(s.Jobs))
	for _, job := range s.Jobs {
		jobs = append(jobs, job)
	}
	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].Name != jobs[j].Name {
			return jobs[i].Name < jobs[j].Name
		}

		return jobs[i].ID < jobs[j].ID
	})

	return jobs
}

// RoleOf returns the role granted to email. Matching ignores case.
func (s Survey) RoleOf(email string) (Role, bool) {
	if email == "" {
		return "", false
	}
	for e, role := range s.ACL {
		if strings.EqualFold(e, email) {
			return role, true
		}
	}

	return "", false
}

// CanCollect reports whether email may submit data to the survey.
func (s Survey) CanCollect(email string) bool {
	role, ok := s.RoleOf(email)
	if !ok {
		return false
	}

	return role == RoleOwner || role == RoleSurveyOrganizer || role == RoleDataCollector
}

// Job groups the tasks collected for one kind of location of interest.
type Job struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Tasks map[string]Task `json:"tasks"`
}

// Task returns the task with the given ID.
func (j Job) Task(id string) (Task, bool) {
	task, ok := j.Tasks[id]

	return task, ok
}

// SortedTasks returns the job's tasks ordered by Index.
func (j Job) SortedTasks() []Task {
	tasks := make([]Task, 0, len(j.Tasks))
	for _, task := range j.Tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, k int) bool {
		if tasks[i].Index != tasks[k].Index {
			return tasks[i].Index < tasks[k].Index
		}

		return tasks[i].ID < tasks[k].ID
	})

	return tasks
}

// AddLOITask returns the task used to define a new location of interest, if any.
func (j Job) AddLOITask() (Task, bool) {
	for _, task := range j.SortedTasks() {
		if task.AddLOITask {
			return task, true
		}
	}

	return Task{}, false
}
