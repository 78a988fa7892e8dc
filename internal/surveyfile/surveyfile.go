// Package surveyfile loads survey definitions written in YAML:
//
//	id: 6d1f5bd3-0c3e-4a4a-9c48-3a8f0c1f0001 # optional, keeps re-imports stable
//	title: Tree inventory
//	acl:
//	  owner@example.com: OWNER
//	jobs:
//	  - id: trees
//	    name: Trees
//	    tasks:
//	      - id: location
//	        type: DROP_PIN
//	        label: Where is the tree?
//	        addLoi: true
//	      - id: healthy
//	        type: MULTIPLE_CHOICE
//	        label: Is the tree healthy?
//	        options:
//	          - {code: Y, label: "Yes"}
//	          - {code: N, label: "No"}
//	      - id: damage
//	        type: TEXT
//	        label: Describe the damage
//	        required: true
//	        condition:
//	          expressions:
//	            - {taskId: healthy, optionIds: [N]}
//
// A task's Index is its position in the job's task list.
package surveyfile

import (
	"errors"
	"fmt"
	"ground/pkg/domain"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSurvey is wrapped by every validation error.
var ErrInvalidSurvey = errors.New("invalid survey file")

type surveyFile struct {
	ID          string            `yaml:"id"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	ACL         map[string]string `yaml:"acl"`
	Jobs        []jobFile         `yaml:"jobs"`
}

type jobFile struct {
	ID    string     `yaml:"id"`
	Name  string     `yaml:"name"`
	Tasks []taskFile `yaml:"tasks"`
}

type taskFile struct {
	ID          string         `yaml:"id"`
	Type        string         `yaml:"type"`
	Label       string         `yaml:"label"`
	Required    bool           `yaml:"required"`
	Cardinality string         `yaml:"cardinality"`
	Options     []optionFile   `yaml:"options"`
	HasOther    bool           `yaml:"hasOther"`
	Condition   *conditionFile `yaml:"condition"`
	AddLOI      bool           `yaml:"addLoi"`
}

type optionFile struct {
	ID    string `yaml:"id"`
	Code  string `yaml:"code"`
	Label string `yaml:"label"`
}

type conditionFile struct {
	MatchType   string           `yaml:"matchType"`
	Expressions []expressionFile `yaml:"expressions"`
}

type expressionFile struct {
	Type      string   `yaml:"type"`
	TaskID    string   `yaml:"taskId"`
	OptionIDs []string `yaml:"optionIds"`
}

// Load reads and validates the survey definition at path.
func Load(path string) (domain.Survey, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Survey{}, fmt.Errorf("could not open survey file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads and validates a survey definition. Unknown keys are rejected.
func Parse(r io.Reader) (domain.Survey, error) {
	var file surveyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return domain.Survey{}, fmt.Errorf("%w: %w", ErrInvalidSurvey, err)
	}

	return file.toDomain()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSurvey, fmt.Sprintf(format, args...))
}

func (f surveyFile) toDomain() (domain.Survey, error) {
	if strings.TrimSpace(f.Title) == "" {
		return domain.Survey{}, invalid("missing title")
	}

	survey := domain.Survey{
		Title:       f.Title,
		Description: f.Description,
		Jobs:        make(map[string]domain.Job, len(f.Jobs)),
		ACL:         make(map[string]domain.Role, len(f.ACL)),
	}
	if f.ID != "" {
		id, err := uuid.Parse(f.ID)
		if err != nil {
			return domain.Survey{}, invalid("survey id %q: %v", f.ID, err)
		}
		survey.ID = domain.SurveyID(id)
	}

	for email, role := range f.ACL {
		r := domain.Role(strings.ToUpper(role))
		if !r.Valid() {
			return domain.Survey{}, invalid("unknown role %q for %s", role, email)
		}
		survey.ACL[strings.ToLower(email)] = r
	}

	for _, jf := range f.Jobs {
		if jf.ID == "" {
			return domain.Survey{}, invalid("job without id")
		}
		if _, ok := survey.Jobs[jf.ID]; ok {
			return domain.Survey{}, invalid("duplicate job id %q", jf.ID)
		}

		job, err := jf.toDomain()
		if err != nil {
			return domain.Survey{}, fmt.Errorf("job %s: %w", jf.ID, err)
		}
		survey.Jobs[job.ID] = job
	}

	return survey, nil
}

func (f jobFile) toDomain() (domain.Job, error) {
	name := f.Name
	if name == "" {
		name = f.ID
	}
	job := domain.Job{ID: f.ID, Name: name, Tasks: make(map[string]domain.Task, len(f.Tasks))}

	addLOI := 0
	for i, tf := range f.Tasks {
		if tf.ID == "" {
			return domain.Job{}, invalid("task %d without id", i)
		}
		if _, ok := job.Tasks[tf.ID]; ok {
			return domain.Job{}, invalid("duplicate task id %q", tf.ID)
		}

		task, err := tf.toDomain(i, job.Tasks)
		if err != nil {
			return domain.Job{}, fmt.Errorf("task %s: %w", tf.ID, err)
		}
		if task.AddLOITask {
			addLOI++
		}
		job.Tasks[task.ID] = task
	}
	if addLOI > 1 {
		return domain.Job{}, invalid("more than one addLoi task")
	}

	return job, nil
}

// toDomain converts the task at index. Conditions may only reference tasks
// in earlier, which holds the tasks listed before it.
func (f taskFile) toDomain(index int, earlier map[string]domain.Task) (domain.Task, error) {
	task := domain.Task{
		ID:         f.ID,
		Index:      index,
		Type:       domain.TaskType(strings.ToUpper(f.Type)),
		Label:      f.Label,
		Required:   f.Required,
		AddLOITask: f.AddLOI,
	}
	if !task.Type.Valid() {
		return domain.Task{}, invalid("unknown type %q", f.Type)
	}
	if task.AddLOITask && !task.Type.IsGeometry() {
		return domain.Task{}, invalid("addLoi task must collect a geometry")
	}

	if task.Type == domain.TaskTypeMultipleChoice {
		mc, err := f.multipleChoice()
		if err != nil {
			return domain.Task{}, err
		}
		task.MultipleChoice = mc
	} else if len(f.Options) > 0 {
		return domain.Task{}, invalid("options on a %s task", task.Type)
	}

	if f.Condition != nil {
		cond, err := f.Condition.toDomain(earlier)
		if err != nil {
			return domain.Task{}, err
		}
		task.Condition = cond
	}

	return task, nil
}

func (f taskFile) multipleChoice() (*domain.MultipleChoice, error) {
	if len(f.Options) == 0 {
		return nil, invalid("multiple choice task without options")
	}

	cardinality := domain.Cardinality(strings.ToUpper(f.Cardinality))
	switch cardinality {
	case "":
		cardinality = domain.SelectOne
	case domain.SelectOne, domain.SelectMultiple:
	default:
		return nil, invalid("unknown cardinality %q", f.Cardinality)
	}

	mc := &domain.MultipleChoice{Cardinality: cardinality, HasOtherOption: f.HasOther}
	seen := make(map[string]struct{}, len(f.Options))
	for i, of := range f.Options {
		id := of.ID
		if id == "" {
			id = of.Code
		}
		if id == "" {
			return nil, invalid("option %d without id or code", i)
		}
		if _, ok := seen[id]; ok {
			return nil, invalid("duplicate option id %q", id)
		}
		seen[id] = struct{}{}

		label := of.Label
		if label == "" {
			label = id
		}
		mc.Options = append(mc.Options, domain.Option{ID: id, Code: of.Code, Label: label})
	}

	return mc, nil
}

func (f conditionFile) toDomain(earlier map[string]domain.Task) (*domain.Condition, error) {
	if len(f.Expressions) == 0 {
		return nil, invalid("condition without expressions")
	}

	match := domain.MatchType(strings.ToUpper(f.MatchType))
	switch match {
	case "":
		match = domain.MatchAny
	case domain.MatchAny, domain.MatchAll, domain.MatchOne:
	default:
		return nil, invalid("unknown match type %q", f.MatchType)
	}

	cond := &domain.Condition{MatchType: match}
	for _, ef := range f.Expressions {
		typ := domain.ExpressionType(strings.ToUpper(ef.Type))
		switch typ {
		case "":
			typ = domain.AnyOfSelected
		case domain.AnyOfSelected, domain.AllOfSelected, domain.OneOfSelected:
		default:
			return nil, invalid("unknown expression type %q", ef.Type)
		}

		source, ok := earlier[ef.TaskID]
		if !ok {
			return nil, invalid("condition references unknown or later task %q", ef.TaskID)
		}
		if source.MultipleChoice == nil {
			return nil, invalid("condition references task %q which is not multiple choice", ef.TaskID)
		}
		if len(ef.OptionIDs) == 0 {
			return nil, invalid("condition on task %q without options", ef.TaskID)
		}
		for _, id := range ef.OptionIDs {
			if _, ok := source.MultipleChoice.Option(id); !ok {
				return nil, invalid("condition references unknown option %q of task %q", id, ef.TaskID)
			}
		}

		cond.Expressions = append(cond.Expressions, domain.Expression{
			Type:      typ,
			TaskID:    ef.TaskID,
			OptionIDs: ef.OptionIDs,
		})
	}

	return cond, nil
}
