package domain_test

import (
	"ground/pkg/domain"
	"ground/pkg/fakedata"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTaskData_IsEmpty(t *testing.T) {
	require.True(t, domain.TextTaskData{Text: "  "}.IsEmpty())
	require.False(t, domain.TextTaskData{Text: "x"}.IsEmpty())
	require.False(t, domain.NumberTaskData{}.IsEmpty())
	require.True(t, domain.DateTimeTaskData{}.IsEmpty())
	require.False(t, domain.DateTimeTaskData{Time: time.Now()}.IsEmpty())
	require.True(t, domain.MultipleChoiceTaskData{}.IsEmpty())
	require.False(t, domain.MultipleChoiceTaskData{OtherText: "x"}.IsEmpty())
	require.True(t, domain.PhotoTaskData{}.IsEmpty())
	require.True(t, domain.GeometryTaskData{}.IsEmpty())
	require.True(t, domain.SkippedTaskData{}.IsEmpty())
}

func TestAcceptsTaskData(t *testing.T) {
	text := fakedata.Task()
	choice := fakedata.ChoiceTask()
	pin := fakedata.AddLOITask()
	area := domain.Task{ID: "area", Type: domain.TaskTypeDrawArea}

	polygon := domain.Geometry{Type: domain.GeometryPolygon, Coordinates: []domain.Coordinate{
		{Latitude: 0, Longitude: 0}, {Latitude: 0, Longitude: 1}, {Latitude: 1, Longitude: 1}, {Latitude: 0, Longitude: 0},
	}}

	require.NoError(t, domain.AcceptsTaskData(text, domain.TextTaskData{Text: "x"}))
	require.NoError(t, domain.AcceptsTaskData(text, domain.SkippedTaskData{}))
	require.ErrorIs(t, domain.AcceptsTaskData(text, domain.NumberTaskData{Value: 1}), domain.ErrTaskDataType)

	require.NoError(t, domain.AcceptsTaskData(choice, domain.MultipleChoiceTaskData{
		SelectedOptionIDs: []string{fakedata.OptionYesID},
	}))
	require.ErrorIs(t, domain.AcceptsTaskData(choice, domain.MultipleChoiceTaskData{
		SelectedOptionIDs: []string{"missing"},
	}), domain.ErrUnknownOption)
	require.ErrorIs(t, domain.AcceptsTaskData(choice, domain.MultipleChoiceTaskData{
		SelectedOptionIDs: []string{fakedata.OptionYesID, fakedata.OptionNoID},
	}), domain.ErrTooManyOptions)
	require.ErrorIs(t, domain.AcceptsTaskData(choice, domain.MultipleChoiceTaskData{OtherText: "maybe"}),
		domain.ErrUnknownOption)

	require.NoError(t, domain.AcceptsTaskData(pin, domain.GeometryTaskData{Geometry: domain.NewPoint(1, 2)}))
	require.ErrorIs(t, domain.AcceptsTaskData(pin, domain.GeometryTaskData{Geometry: domain.NewPoint(100, 2)}),
		domain.ErrInvalidGeometry)
	require.NoError(t, domain.AcceptsTaskData(area, domain.GeometryTaskData{Geometry: polygon}))
	require.ErrorIs(t, domain.AcceptsTaskData(area, domain.GeometryTaskData{Geometry: domain.NewPoint(1, 2)}),
		domain.ErrTaskDataType)

	number := domain.Task{ID: "n", Type: domain.TaskTypeNumber}
	require.NoError(t, domain.AcceptsTaskData(number, domain.NumberTaskData{Value: 2.5}))
	require.ErrorIs(t, domain.AcceptsTaskData(number, domain.NumberTaskData{Value: math.NaN()}), domain.ErrNotFinite)
	require.ErrorIs(t, domain.AcceptsTaskData(number, domain.NumberTaskData{Value: math.Inf(-1)}), domain.ErrNotFinite)
	require.ErrorIs(t, domain.AcceptsTaskData(pin, domain.GeometryTaskData{Geometry: domain.NewPoint(math.NaN(), 0)}),
		domain.ErrInvalidGeometry)
	require.ErrorIs(t, domain.AcceptsTaskData(pin, domain.GeometryTaskData{Geometry: domain.NewPoint(0, math.Inf(1))}),
		domain.ErrInvalidGeometry)

	instructions := domain.Task{ID: "i", Type: domain.TaskTypeInstructions}
	require.ErrorIs(t, domain.AcceptsTaskData(instructions, domain.TextTaskData{Text: "x"}), domain.ErrTaskDataType)
}

func TestSubmissionData_Apply(t *testing.T) {
	base := domain.SubmissionData{"a": domain.TextTaskData{Text: "1"}, "b": domain.TextTaskData{Text: "2"}}

	out := base.Apply(
		domain.TaskDataDelta{TaskID: "a", NewData: domain.TextTaskData{Text: "changed"}},
		domain.TaskDataDelta{TaskID: "b"},
		domain.TaskDataDelta{TaskID: "c", NewData: domain.SkippedTaskData{}},
	)

	require.Equal(t, domain.SubmissionData{
		"a": domain.TextTaskData{Text: "changed"},
		"c": domain.SkippedTaskData{},
	}, out)
	// the receiver is left untouched
	require.Equal(t, domain.TextTaskData{Text: "1"}, base["a"])
	require.Contains(t, base, "b")

	require.True(t, out.Answered("a"))
	require.False(t, out.Answered("b"))
	require.False(t, out.Answered("c"))
}

func TestSubmissionData_SelectedOptions(t *testing.T) {
	data := fakedata.SubmissionData()
	require.Equal(t, []string{fakedata.OptionYesID}, data.SelectedOptions(fakedata.ChoiceTaskID))
	require.Nil(t, data.SelectedOptions(fakedata.TaskID))
	require.Nil(t, data.SelectedOptions("missing"))
}
