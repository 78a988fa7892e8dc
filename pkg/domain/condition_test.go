package domain_test

import (
	"ground/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func selections(m map[string][]string) func(string) []string {
	return func(taskID string) []string { return m[taskID] }
}

func TestExpression_Fulfilled(t *testing.T) {
	cases := []struct {
		name     string
		expr     domain.Expression
		selected []string
		want     bool
	}{
		{"any: one hit", domain.Expression{Type: domain.AnyOfSelected, OptionIDs: []string{"a", "b"}}, []string{"b"}, true},
		{"any: no hit", domain.Expression{Type: domain.AnyOfSelected, OptionIDs: []string{"a"}}, []string{"c"}, false},
		{"any: nothing selected", domain.Expression{Type: domain.AnyOfSelected, OptionIDs: []string{"a"}}, nil, false},
		{"all: every option", domain.Expression{Type: domain.AllOfSelected, OptionIDs: []string{"a", "b"}}, []string{"b", "a", "c"}, true},
		{"all: missing one", domain.Expression{Type: domain.AllOfSelected, OptionIDs: []string{"a", "b"}}, []string{"a"}, false},
		{"all: no options", domain.Expression{Type: domain.AllOfSelected}, []string{"a"}, false},
		{"one: exactly one", domain.Expression{Type: domain.OneOfSelected, OptionIDs: []string{"a", "b"}}, []string{"a"}, true},
		{"one: two hits", domain.Expression{Type: domain.OneOfSelected, OptionIDs: []string{"a", "b"}}, []string{"a", "b"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.expr.Fulfilled(tc.selected))
		})
	}
}

func TestCondition_Fulfilled(t *testing.T) {
	e1 := domain.Expression{Type: domain.AnyOfSelected, TaskID: "t1", OptionIDs: []string{"yes"}}
	e2 := domain.Expression{Type: domain.AnyOfSelected, TaskID: "t2", OptionIDs: []string{"red"}}

	both := selections(map[string][]string{"t1": {"yes"}, "t2": {"red"}})
	first := selections(map[string][]string{"t1": {"yes"}})
	none := selections(nil)

	matchAny := domain.Condition{MatchType: domain.MatchAny, Expressions: []domain.Expression{e1, e2}}
	require.True(t, matchAny.Fulfilled(both))
	require.True(t, matchAny.Fulfilled(first))
	require.False(t, matchAny.Fulfilled(none))

	matchAll := domain.Condition{MatchType: domain.MatchAll, Expressions: []domain.Expression{e1, e2}}
	require.True(t, matchAll.Fulfilled(both))
	require.False(t, matchAll.Fulfilled(first))

	matchOne := domain.Condition{MatchType: domain.MatchOne, Expressions: []domain.Expression{e1, e2}}
	require.False(t, matchOne.Fulfilled(both))
	require.True(t, matchOne.Fulfilled(first))
	require.False(t, matchOne.Fulfilled(none))
}
