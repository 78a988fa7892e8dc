package domain

// TaskType determines what kind of response a task collects.
type TaskType string

const (
	TaskTypeText            TaskType = "TEXT"
	TaskTypeNumber          TaskType = "NUMBER"
	TaskTypeDate            TaskType = "DATE"
	TaskTypeTime            TaskType = "TIME"
	TaskTypeMultipleChoice  TaskType = "MULTIPLE_CHOICE"
	TaskTypePhoto           TaskType = "PHOTO"
	TaskTypeDropPin         TaskType = "DROP_PIN"
	TaskTypeDrawArea        TaskType = "DRAW_AREA"
	TaskTypeCaptureLocation TaskType = "CAPTURE_LOCATION"
	TaskTypeInstructions    TaskType = "INSTRUCTIONS"
)

// Valid reports whether t is a known task type.
func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeText, TaskTypeNumber, TaskTypeDate, TaskTypeTime, TaskTypeMultipleChoice,
		TaskTypePhoto, TaskTypeDropPin, TaskTypeDrawArea, TaskTypeCaptureLocation, TaskTypeInstructions:
		return true
	}

	return false
}

// IsGeometry reports whether responses to t are geometries.
func (t TaskType) IsGeometry() bool {
	return t == TaskTypeDropPin || t == TaskTypeDrawArea || t == TaskTypeCaptureLocation
}

// Task is a single question or field within a job.
type Task struct {
	ID    string   `json:"id"`
	Index int      `json:"index"`
	Type  TaskType `json:"type"`
	Label string   `json:"label"`
	// Required tasks must be answered before moving past them.
	Required bool `json:"required,omitempty"`
	// MultipleChoice is set for TaskTypeMultipleChoice only.
	MultipleChoice *MultipleChoice `json:"multipleChoice,omitempty"`
	// Condition, when set, hides the task unless it is fulfilled by earlier responses.
	Condition *Condition `json:"condition,omitempty"`
	// AddLOITask marks the task that defines the location of interest of a new
	// submission. It is skipped when data is collected for an existing LOI.
	AddLOITask bool `json:"addLoiTask,omitempty"`
}

// Cardinality limits how many options of a multiple choice task may be selected.
type Cardinality string

const (
	SelectOne      Cardinality = "SELECT_ONE"
	SelectMultiple Cardinality = "SELECT_MULTIPLE"
)

// Option is a selectable answer of a multiple choice task.
type Option struct {
	ID    string `json:"id"`
	Code  string `json:"code,omitempty"`
	Label string `json:"label"`
}

// MultipleChoice describes the options of a multiple choice task.
type MultipleChoice struct {
	Cardinality    Cardinality `json:"cardinality"`
	Options        []Option    `json:"options"`
	HasOtherOption bool        `json:"hasOtherOption,omitempty"`
}

// Option returns the option with the given ID.
func (m MultipleChoice) Option(id string) (Option, bool) {
	for _, o := range m.Options {
		if o.ID == id {
			return o, true
		}
	}

	return Option{}, false
}

// OptionByCode returns the option whose code or label matches s.
func (m MultipleChoice) OptionByCode(s string) (Option, bool) {
	for _, o := range m.Options {
		if (o.Code != "" && o.Code == s) || o.Label == s {
			return o, true
		}
	}

	return Option{}, false
}
