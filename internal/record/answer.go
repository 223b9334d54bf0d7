package record

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AnswerValue is a player's answer: a scalar (string, number, bool) or a
// list of scalars. Hosts serialize multi-select answers as arrays and
// everything else as bare scalars, so both forms must round-trip.
type AnswerValue struct {
	parts []string
	list  bool
	set   bool
}

// Scalar builds a scalar answer value.
func Scalar(s string) AnswerValue {
	return AnswerValue{parts: []string{s}, set: true}
}

// List builds a list answer value.
func List(items ...string) AnswerValue {
	return AnswerValue{parts: items, list: true, set: true}
}

// IsSet reports whether the answer carried any value (false for JSON null
// or an absent field).
func (v AnswerValue) IsSet() bool { return v.set }

// IsList reports whether the answer was a JSON array.
func (v AnswerValue) IsList() bool { return v.list }

// Key returns the canonical string form used to bucket answers:
// lists join with ", ", scalars use their string form.
func (v AnswerValue) Key() string {
	if !v.set {
		return ""
	}
	if v.list {
		return strings.Join(v.parts, ", ")
	}
	return v.parts[0]
}

// Equal reports whether two answer values have the same canonical form.
func (v AnswerValue) Equal(other AnswerValue) bool {
	return v.set == other.set && v.list == other.list && v.Key() == other.Key()
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = fromAny(raw)
	return nil
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	if v.list {
		return json.Marshal(v.parts)
	}
	return json.Marshal(v.parts[0])
}

func fromAny(raw any) AnswerValue {
	switch t := raw.(type) {
	case nil:
		return AnswerValue{}
	case []any:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = scalarString(item)
		}
		return AnswerValue{parts: parts, list: true, set: true}
	default:
		return AnswerValue{parts: []string{scalarString(raw)}, set: true}
	}
}

// scalarString coerces a decoded JSON scalar to its display string.
// Whole numbers render without a fractional part so "42" and 42 bucket
// together.
func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
