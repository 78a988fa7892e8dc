package collection

import (
	"fmt"
	"ground/pkg/domain"
	"math"
	"ground/pkg/serrors"
	"strconv"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ParseResponse turns the text typed by a collector into a response for task.
//
// Accepted input per task type:
//   - NUMBER: a decimal number
//   - DATE: YYYY-MM-DD or RFC 3339
//   - TIME: HH:MM or RFC 3339
//   - MULTIPLE_CHOICE: comma-separated option codes, labels or IDs; unknown
//     text becomes the "other" answer when the task allows one
//   - DROP_PIN, CAPTURE_LOCATION: "lat,lng"
//   - DRAW_AREA: "lat,lng; lat,lng; ..." (the shell is closed automatically)
func ParseResponse(task domain.Task, raw string) (domain.TaskData, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "empty response")
	}

	data, err := parse(task, raw)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "could not parse response for task %s", task.ID)
	}
	if err := domain.AcceptsTaskData(task, data); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid response for task %s", task.ID)
	}

	return data, nil
}

func parse(task domain.Task, raw string) (domain.TaskData, error) {
	switch task.Type {
	case domain.TaskTypeText:
		return domain.TextTaskData{Text: raw}, nil
	case domain.TaskTypeNumber:
		v, err := parseFloat(raw)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", raw)
		}

		return domain.NumberTaskData{Value: v}, nil
	case domain.TaskTypeDate:
		return parseTime(raw, dateLayout)
	case domain.TaskTypeTime:
		return parseTime(raw, timeLayout)
	case domain.TaskTypeMultipleChoice:
		return parseChoice(task, raw)
	case domain.TaskTypePhoto:
		return domain.PhotoTaskData{Path: raw}, nil
	case domain.TaskTypeDropPin, domain.TaskTypeCaptureLocation:
		c, err := parseCoordinate(raw)
		if err != nil {
			return nil, err
		}

		return domain.GeometryTaskData{Geometry: domain.NewPoint(c.Latitude, c.Longitude)}, nil
	case domain.TaskTypeDrawArea:
		return parsePolygon(raw)
	default:
		return nil, fmt.Errorf("%s tasks take no input", task.Type)
	}
}

func parseTime(raw, layout string) (domain.TaskData, error) {
	if t, err := time.Parse(layout, raw); err == nil {
		return domain.DateTimeTaskData{Time: t}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("expected %s or RFC 3339, got %q", layout, raw)
	}

	return domain.DateTimeTaskData{Time: t}, nil
}

func parseChoice(task domain.Task, raw string) (domain.TaskData, error) {
	if task.MultipleChoice == nil {
		return nil, fmt.Errorf("task %s has no options", task.ID)
	}
	mc := task.MultipleChoice

	var out domain.MultipleChoiceTaskData
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if o, ok := findOption(*mc, part); ok {
			out.SelectedOptionIDs = append(out.SelectedOptionIDs, o.ID)

			continue
		}
		if !mc.HasOtherOption || out.OtherText != "" {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOption, part)
		}
		out.OtherText = part
	}

	return out, nil
}

func findOption(mc domain.MultipleChoice, s string) (domain.Option, bool) {
	if o, ok := mc.Option(s); ok {
		return o, true
	}
	if o, ok := mc.OptionByCode(s); ok {
		return o, true
	}
	for _, o := range mc.Options {
		if strings.EqualFold(o.Code, s) || strings.EqualFold(o.Label, s) {
			return o, true
		}
	}

	return domain.Option{}, false
}

func parseCoordinate(raw string) (domain.Coordinate, error) {
	lat, lng, ok := strings.Cut(raw, ",")
	if !ok {
		return domain.Coordinate{}, fmt.Errorf("expected lat,lng, got %q", raw)
	}
	latV, err := parseFloat(strings.TrimSpace(lat))
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}
	lngV, err := parseFloat(strings.TrimSpace(lng))
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("invalid longitude %q: %w", lng, err)
	}

	return domain.Coordinate{Latitude: latV, Longitude: lngV}, nil
}

// parseFloat parses a finite number. NaN and infinities cannot be encoded.
func parseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", domain.ErrNotFinite, raw)
	}

	return v, nil
}

func parsePolygon(raw string) (domain.TaskData, error) {
	var coords []domain.Coordinate
	for _, part := range strings.Split(raw, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseCoordinate(part)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	if len(coords) > 0 && coords[0] != coords[len(coords)-1] {
		coords = append(coords, coords[0])
	}

	return domain.GeometryTaskData{Geometry: domain.Geometry{Type: domain.GeometryPolygon, Coordinates: coords}}, nil
}
