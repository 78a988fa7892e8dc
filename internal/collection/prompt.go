package collection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"ground/pkg/domain"
	"io"
	"strings"
)

// Commands understood by Prompt besides task responses.
const (
	CommandBack = ":back"
	CommandQuit = ":quit"
)

// ErrAborted is returned by Prompt when the collector quits or the input ends.
var ErrAborted = errors.New("data collection aborted")

// Prompt walks the collector through flow on a line-based terminal. Each task
// is printed to out and answered with one line read from in. An empty line
// skips the task, which fails on required tasks. On the last task a valid
// answer finishes the flow and its deltas are returned.
func Prompt(ctx context.Context, flow *Flow, in io.Reader, out io.Writer) ([]domain.TaskDataDelta, error) {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		printTask(out, flow)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("could not read input: %w", err)
			}

			return nil, ErrAborted
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case CommandQuit:
			return nil, ErrAborted
		case CommandBack:
			if err := flow.Previous(); err != nil {
				fmt.Fprintln(out, err)
			}

			continue
		}

		if err := respond(flow, line); err != nil {
			printError(out, err)

			continue
		}

		if flow.IsLast() {
			deltas, err := flow.Finish()
			if err != nil {
				printError(out, err)

				continue
			}

			return deltas, nil
		}
		if err := flow.Next(); err != nil {
			printError(out, err)
		}
	}
}

func respond(flow *Flow, line string) error {
	task := flow.Current()
	if task.Type == domain.TaskTypeInstructions {
		return nil
	}
	if line == "" {
		if task.Required {
			return ErrRequired
		}

		return flow.SetResponse(domain.SkippedTaskData{})
	}

	data, err := ParseResponse(task, line)
	if err != nil {
		return err
	}

	return flow.SetResponse(data)
}

func printTask(out io.Writer, flow *Flow) {
	task := flow.Current()
	i, n := flow.Position()

	label := task.Label
	if task.Required {
		label += " *"
	}
	fmt.Fprintf(out, "[%d/%d] %s\n", i+1, n, label)

	if task.MultipleChoice != nil {
		for _, o := range task.MultipleChoice.Options {
			code := o.Code
			if code == "" {
				code = o.ID
			}
			fmt.Fprintf(out, "  %s) %s\n", code, o.Label)
		}
		if task.MultipleChoice.HasOtherOption {
			fmt.Fprintln(out, "  or type another answer")
		}
	}
	if previous, ok := flow.Response(task.ID); ok && previous != nil && !previous.IsEmpty() {
		fmt.Fprintf(out, "  current: %s\n", describe(previous))
	}
	fmt.Fprint(out, "> ")
}

func printError(out io.Writer, err error) {
	if errors.Is(err, ErrRequired) {
		fmt.Fprintln(out, RequiredMessage)

		return
	}
	fmt.Fprintln(out, err)
}

func describe(data domain.TaskData) string {
	switch v := data.(type) {
	case domain.TextTaskData:
		return v.Text
	case domain.NumberTaskData:
		return fmt.Sprintf("%g", v.Value)
	case domain.DateTimeTaskData:
		return v.Time.Format("2006-01-02 15:04")
	case domain.MultipleChoiceTaskData:
		parts := append([]string(nil), v.SelectedOptionIDs...)
		if v.OtherText != "" {
			parts = append(parts, v.OtherText)
		}

		return strings.Join(parts, ", ")
	case domain.PhotoTaskData:
		return v.Path
	case domain.GeometryTaskData:
		return fmt.Sprintf("%s with %d coordinates", v.Geometry.Type, len(v.Geometry.Coordinates))
	default:
		return ""
	}
}
