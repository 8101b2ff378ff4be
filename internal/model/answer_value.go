package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerValue is the value side of a response's answers map: a plain string
// for scalar field types, or an ordered list of strings for checkbox fields.
// Any other JSON shape is rejected rather than coerced.
type AnswerValue struct {
	Scalar  string
	Multi   []string
	IsMulti bool
}

func ScalarAnswer(v string) AnswerValue {
	return AnswerValue{Scalar: v}
}

func MultiAnswer(vs ...string) AnswerValue {
	return AnswerValue{Multi: vs, IsMulti: true}
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.IsMulti {
		if v.Multi == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(v.Multi)
	}
	return json.Marshal(v.Scalar)
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	// json.Unmarshal treats null as a no-op on string targets, which would
	// coerce it to "" instead of failing. Reject the token outright.
	if trimmed == "null" {
		return fmt.Errorf("answer must be a string or a list of strings, got null")
	}
	if strings.HasPrefix(trimmed, "[") {
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return fmt.Errorf("answer list must contain only strings: %w", err)
		}
		multi := make([]string, 0, len(elems))
		for _, elem := range elems {
			if strings.TrimSpace(string(elem)) == "null" {
				return fmt.Errorf("answer list must contain only strings, got null")
			}
			var s string
			if err := json.Unmarshal(elem, &s); err != nil {
				return fmt.Errorf("answer list must contain only strings: %w", err)
			}
			multi = append(multi, s)
		}
		*v = AnswerValue{Multi: multi, IsMulti: true}
		return nil
	}
	var scalar string
	if err := json.Unmarshal(data, &scalar); err != nil {
		return fmt.Errorf("answer must be a string or a list of strings: %w", err)
	}
	*v = AnswerValue{Scalar: scalar}
	return nil
}

// CSVCell renders the value the way the export formats a cell: list answers
// joined with ", ", scalar answers verbatim.
func (v AnswerValue) CSVCell() string {
	if v.IsMulti {
		return strings.Join(v.Multi, ", ")
	}
	return v.Scalar
}
