package document

import (
	"ground/pkg/domain"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Discriminators of encoded task data.
const (
	typeText           = "text"
	typeNumber         = "number"
	typeDateTime       = "dateTime"
	typeMultipleChoice = "multipleChoice"
	typePhoto          = "photo"
	typeGeometry       = "geometry"
	typeSkipped        = "skipped"
)

// EncodeTaskData writes data as a JSON object tagged with a "type" field.
func EncodeTaskData(e *jx.Encoder, data domain.TaskData) error {
	switch v := data.(type) {
	case domain.TextTaskData:
		e.ObjStart()
		e.FieldStart("type")
		e.Str(typeText)
		e.FieldStart("text")
		e.Str(v.Text)
		e.ObjEnd()
	case domain.NumberTaskData:
		e.ObjStart()
		e.FieldStart("type")
		e.Str(typeNumber)
		e.FieldStart("value")
		e.Float64(v.Value)
		e.ObjEnd()
	case domain.DateTimeTaskData:
		e.ObjStart()
		e.FieldStart("type")
		e.Str(typeDateTime)
		e.FieldStart("time")
		e.Str(v.Time.UTC().Format(time.RFC3339Nano))
		e.ObjEnd()
	case domain.MultipleChoiceTaskData:
		e.ObjStart()
		e.FieldStart("type")
		e.Str(typeMultipleChoice)
		e.FieldStart("selectedOptionIds")
		e.ArrStart()
		for _, id := range v.SelectedOptionIDs {
			e.Str(id)
		}
		e.ArrEnd()
		if v.OtherText != "" {
			e.FieldStart("otherText")
			e.Str(v.OtherText)
		}
		e.ObjEnd()
	case domain.PhotoTaskData:
		e.ObjStart()
		e.FieldStart("type")
		e.Str(typePhoto)
		e.FieldStart("path")
		e.Str(v.Path)
		e.ObjEnd()
	case domain.GeometryTaskData:
		e.ObjStart()
		e.FieldStart("type")
		e.Str(typeGeometry)
		e.FieldStart("geometry")
		EncodeGeometry(e, v.Geometry)
		e.ObjEnd()
	case domain.SkippedTaskData:
		e.ObjStart()
		e.FieldStart("type")
		e.Str(typeSkipped)
		e.ObjEnd()
	default:
		return errors.Errorf("unsupported task data %T", data)
	}

	return nil
}

// DecodeTaskData reads a value written by EncodeTaskData. JSON null decodes
// to nil.
func DecodeTaskData(d *jx.Decoder) (domain.TaskData, error) {
	if d.Next() == jx.Null {
		if err := d.Null(); err != nil {
			return nil, errors.Wrap(err, "null")
		}

		return nil, nil
	}

	raw, err := d.Raw()
	if err != nil {
		return nil, errors.Wrap(err, "read task data")
	}

	var kind string
	if err := jx.DecodeBytes(raw).Obj(func(d *jx.Decoder, key string) error {
		if key != "type" {
			return d.Skip()
		}
		kind, err = d.Str()

		return err
	}); err != nil {
		return nil, errors.Wrap(err, "read type")
	}

	switch kind {
	case typeText:
		var out domain.TextTaskData
		err = decodeFields(raw, map[string]func(*jx.Decoder) error{
			"text": func(d *jx.Decoder) (err error) { out.Text, err = d.Str(); return },
		})

		return out, err
	case typeNumber:
		var out domain.NumberTaskData
		err = decodeFields(raw, map[string]func(*jx.Decoder) error{
			"value": func(d *jx.Decoder) (err error) { out.Value, err = d.Float64(); return },
		})

		return out, err
	case typeDateTime:
		var out domain.DateTimeTaskData
		err = decodeFields(raw, map[string]func(*jx.Decoder) error{
			"time": func(d *jx.Decoder) error {
				s, err := d.Str()
				if err != nil {
					return err
				}
				out.Time, err = time.Parse(time.RFC3339Nano, s)

				return err
			},
		})

		return out, err
	case typeMultipleChoice:
		var out domain.MultipleChoiceTaskData
		err = decodeFields(raw, map[string]func(*jx.Decoder) error{
			"selectedOptionIds": func(d *jx.Decoder) error {
				return d.Arr(func(d *jx.Decoder) error {
					id, err := d.Str()
					if err != nil {
						return err
					}
					out.SelectedOptionIDs = append(out.SelectedOptionIDs, id)

					return nil
				})
			},
			"otherText": func(d *jx.Decoder) (err error) { out.OtherText, err = d.Str(); return },
		})

		return out, err
	case typePhoto:
		var out domain.PhotoTaskData
		err = decodeFields(raw, map[string]func(*jx.Decoder) error{
			"path": func(d *jx.Decoder) (err error) { out.Path, err = d.Str(); return },
		})

		return out, err
	case typeGeometry:
		var out domain.GeometryTaskData
		err = decodeFields(raw, map[string]func(*jx.Decoder) error{
			"geometry": func(d *jx.Decoder) (err error) { out.Geometry, err = DecodeGeometry(d); return },
		})

		return out, err
	case typeSkipped:
		return domain.SkippedTaskData{}, nil
	case "":
		return nil, errors.New("missing task data type")
	default:
		return nil, errors.Errorf("unknown task data type %q", kind)
	}
}

// EncodeGeometry writes g as {"type": ..., "coordinates": [{"lat": ..., "lng": ...}]}.
func EncodeGeometry(e *jx.Encoder, g domain.Geometry) {
	e.ObjStart()
	e.FieldStart("type")
	e.Str(string(g.Type))
	e.FieldStart("coordinates")
	e.ArrStart()
	for _, c := range g.Coordinates {
		e.ObjStart()
		e.FieldStart("lat")
		e.Float64(c.Latitude)
		e.FieldStart("lng")
		e.Float64(c.Longitude)
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

// DecodeGeometry reads a value written by EncodeGeometry.
func DecodeGeometry(d *jx.Decoder) (domain.Geometry, error) {
	var g domain.Geometry
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "type":
			s, err := d.Str()
			g.Type = domain.GeometryType(s)

			return err
		case "coordinates":
			return d.Arr(func(d *jx.Decoder) error {
				var c domain.Coordinate
				err := d.Obj(func(d *jx.Decoder, key string) (err error) {
					switch key {
					case "lat":
						c.Latitude, err = d.Float64()
					case "lng":
						c.Longitude, err = d.Float64()
					default:
						err = d.Skip()
					}

					return err
				})
				g.Coordinates = append(g.Coordinates, c)

				return err
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return domain.Geometry{}, errors.Wrap(err, "decode geometry")
	}

	return g, nil
}

// MarshalGeometry encodes g with EncodeGeometry.
func MarshalGeometry(g domain.Geometry) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	EncodeGeometry(e, g)

	return append([]byte(nil), e.Bytes()...)
}

// UnmarshalGeometry decodes a document written by MarshalGeometry. Empty input
// and JSON null decode to an empty geometry.
func UnmarshalGeometry(b []byte) (domain.Geometry, error) {
	if isNull(b) {
		return domain.Geometry{}, nil
	}

	return DecodeGeometry(jx.DecodeBytes(b))
}

// decodeFields decodes the object in raw, dispatching known keys to fields
// and skipping the rest.
func decodeFields(raw jx.Raw, fields map[string]func(*jx.Decoder) error) error {
	return jx.DecodeBytes(raw).Obj(func(d *jx.Decoder, key string) error {
		fn, ok := fields[key]
		if !ok {
			return d.Skip()
		}
		if err := fn(d); err != nil {
			return errors.Wrapf(err, "decode field %q", key)
		}

		return nil
	})
}
