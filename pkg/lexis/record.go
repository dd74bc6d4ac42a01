package lexis

import (
	"encoding/json"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/matzehuels/lexis/pkg/errors"
)

// Record is one raw row of ingested data, as decoded from JSON, YAML or CSV.
type Record = map[string]any

// BatchKeys names the record fields read by [Diagram.AddBatch].
type BatchKeys struct {
	X     string    `json:"x" toml:"x"`         // year
	Y     string    `json:"y" toml:"y"`         // age; ignored for births
	Value string    `json:"value" toml:"value"` // printed as-is
	Mode  LabelKind `json:"mode,omitempty" toml:"mode"`

	// Cohort names the birth-year field. Required for deaths.
	Cohort string `json:"cohort,omitempty" toml:"cohort"`
}

// Validate checks that every key the mode needs is set.
func (k BatchKeys) Validate() error {
	if k.X == "" || k.Value == "" {
		return errors.New(errors.ErrCodeInvalidInput, "batch keys need x and value")
	}
	switch k.mode() {
	case LabelPoint:
		if k.Y == "" {
			return errors.New(errors.ErrCodeInvalidInput, "point batch needs a y key")
		}
	case LabelBirths:
	case LabelDeaths:
		if k.Y == "" || k.Cohort == "" {
			return errors.New(errors.ErrCodeInvalidInput, "deaths batch needs y and cohort keys")
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown batch mode %q (must be point, births or deaths)", k.Mode)
	}
	return nil
}

func (k BatchKeys) mode() LabelKind {
	if k.Mode == "" {
		return LabelPoint
	}
	return k.Mode
}

// ToInt coerces a raw field to int. Integers of any width, floats with no
// fractional part and strings holding either are accepted. Conversions that
// would lose range or precision fail.
func ToInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return safecast.Conv[int](n)
	case int16:
		return safecast.Conv[int](n)
	case int32:
		return safecast.Conv[int](n)
	case int64:
		return safecast.Conv[int](n)
	case uint:
		return safecast.Conv[int](n)
	case uint8:
		return safecast.Conv[int](n)
	case uint16:
		return safecast.Conv[int](n)
	case uint32:
		return safecast.Conv[int](n)
	case uint64:
		return safecast.Conv[int](n)
	case float32:
		return safecast.Convert[int](n)
	case float64:
		return safecast.Convert[int](n)
	case json.Number:
		return parseInt(string(n))
	case string:
		return parseInt(n)
	case nil:
		return 0, errors.New(errors.ErrCodeDataCast, "missing value")
	}
	return 0, errors.New(errors.ErrCodeDataCast, "unsupported type %T", v)
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return safecast.Convert[int](f)
}

// field reads and coerces one key of a record.
func field(rec Record, row int, key string) (int, error) {
	raw, ok := rec[key]
	if !ok {
		return 0, &errors.DataCastError{Row: row, Key: key, Value: nil,
			Cause: errors.New(errors.ErrCodeDataCast, "missing field")}
	}
	n, err := ToInt(raw)
	if err != nil {
		return 0, &errors.DataCastError{Row: row, Key: key, Value: raw, Cause: err}
	}
	return n, nil
}
