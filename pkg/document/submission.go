package document

import (
	"ground/pkg/domain"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// EncodeSubmissionData encodes responses as an object keyed by task ID.
func EncodeSubmissionData(data domain.SubmissionData) ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	for taskID, value := range data {
		if value == nil {
			continue
		}
		e.FieldStart(taskID)
		if err := EncodeTaskData(e, value); err != nil {
			return nil, errors.Wrapf(err, "encode task %q", taskID)
		}
	}
	e.ObjEnd()

	return append([]byte(nil), e.Bytes()...), nil
}

// DecodeSubmissionData decodes a document written by EncodeSubmissionData.
// Empty input and JSON null decode to empty data.
func DecodeSubmissionData(b []byte) (domain.SubmissionData, error) {
	out := domain.SubmissionData{}
	if isNull(b) {
		return out, nil
	}

	err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, taskID string) error {
		value, err := DecodeTaskData(d)
		if err != nil {
			return errors.Wrapf(err, "decode task %q", taskID)
		}
		if value != nil {
			out[taskID] = value
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode submission data")
	}

	return out, nil
}

// EncodeDeltas encodes task data deltas as
// [{"taskId": ..., "taskType": ..., "newData": ...}].
func EncodeDeltas(deltas []domain.TaskDataDelta) ([]byte, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	if err := WriteDeltas(e, deltas); err != nil {
		return nil, err
	}

	return append([]byte(nil), e.Bytes()...), nil
}

// WriteDeltas writes deltas to e.
func WriteDeltas(e *jx.Encoder, deltas []domain.TaskDataDelta) error {
	e.ArrStart()
	for _, delta := range deltas {
		e.ObjStart()
		e.FieldStart("taskId")
		e.Str(delta.TaskID)
		e.FieldStart("taskType")
		e.Str(string(delta.TaskType))
		e.FieldStart("newData")
		if delta.NewData == nil {
			e.Null()
		} else if err := EncodeTaskData(e, delta.NewData); err != nil {
			return errors.Wrapf(err, "encode delta of task %q", delta.TaskID)
		}
		e.ObjEnd()
	}
	e.ArrEnd()

	return nil
}

// DecodeDeltas decodes a document written by EncodeDeltas.
func DecodeDeltas(b []byte) ([]domain.TaskDataDelta, error) {
	if isNull(b) {
		return nil, nil
	}

	deltas, err := ReadDeltas(jx.DecodeBytes(b))
	if err != nil {
		return nil, errors.Wrap(err, "decode deltas")
	}

	return deltas, nil
}

// ReadDeltas reads deltas written by WriteDeltas from d.
func ReadDeltas(d *jx.Decoder) ([]domain.TaskDataDelta, error) {
	var out []domain.TaskDataDelta
	err := d.Arr(func(d *jx.Decoder) error {
		var delta domain.TaskDataDelta
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "taskId":
				s, err := d.Str()
				delta.TaskID = s

				return err
			case "taskType":
				s, err := d.Str()
				delta.TaskType = domain.TaskType(s)

				return err
			case "newData":
				data, err := DecodeTaskData(d)
				delta.NewData = data

				return err
			default:
				return d.Skip()
			}
		}); err != nil {
			return err
		}
		if delta.TaskID == "" {
			return errors.New("delta without task id")
		}
		out = append(out, delta)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
