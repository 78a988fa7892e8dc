package domain

// MatchType determines how the expressions of a condition are combined.
type MatchType string

const (
	MatchAny MatchType = "MATCH_ANY"
	MatchAll MatchType = "MATCH_ALL"
	MatchOne MatchType = "MATCH_ONE"
)

// ExpressionType determines how an expression compares selected options.
type ExpressionType string

const (
	AnyOfSelected ExpressionType = "ANY_OF_SELECTED"
	AllOfSelected ExpressionType = "ALL_OF_SELECTED"
	OneOfSelected ExpressionType = "ONE_OF_SELECTED"
)

// Condition hides a task unless the options selected in other multiple choice
// tasks match its expressions.
type Condition struct {
	MatchType   MatchType    `json:"matchType"`
	Expressions []Expression `json:"expressions"`
}

// Expression tests the options selected for a single multiple choice task.
type Expression struct {
	Type      ExpressionType `json:"type"`
	TaskID    string         `json:"taskId"`
	OptionIDs []string       `json:"optionIds"`
}

// Fulfilled evaluates the condition. selected returns the option IDs chosen for
// a task, or nil when it has no response.
func (c Condition) Fulfilled(selected func(taskID string) []string) bool {
	matches := 0
	for _, e := range c.Expressions {
		if e.Fulfilled(selected(e.TaskID)) {
			matches++
		}
	}

	switch c.MatchType {
	case MatchAll:
		return matches == len(c.Expressions)
	case MatchOne:
		return matches == 1
	default:
		return matches > 0
	}
}

// Fulfilled evaluates the expression against the selected option IDs.
func (e Expression) Fulfilled(selected []string) bool {
	set := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		set[id] = struct{}{}
	}

	hits := 0
	for _, id := range e.OptionIDs {
		if _, ok := set[id]; ok {
			hits++
		}
	}

	switch e.Type {
	case AllOfSelected:
		return len(e.OptionIDs) > 0 && hits == len(e.OptionIDs)
	case OneOfSelected:
		return hits == 1
	default:
		return hits > 0
	}
}
