package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/you-humble/autoparts-inventory/internal/model"
)

// Int is an integer that also accepts a numeric string ("2"). A fractional
// JSON number is truncated.
type Int int64

func (n *Int) UnmarshalJSON(b []byte) error {
	raw, quoted, err := numberText(b)
	if err != nil {
		return err
	}

	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*n = Int(v)
		return nil
	}
	if !quoted {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && f >= math.MinInt64 && f < math.MaxInt64 {
			*n = Int(f)
			return nil
		}
	}

	return model.Invalid("number", fmt.Sprintf("%q is not an integer", raw))
}

// Float is a number that also accepts a numeric string ("19.99").
type Float float64

func (n *Float) UnmarshalJSON(b []byte) error {
	raw, _, err := numberText(b)
	if err != nil {
		return err
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return model.Invalid("number", fmt.Sprintf("%q is not a number", raw))
	}

	*n = Float(f)
	return nil
}

func numberText(b []byte) (string, bool, error) {
	if len(b) == 0 || b[0] != '"' {
		return string(b), false, nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", true, model.Invalid("number", "must be a number or numeric string")
	}
	return strings.TrimSpace(s), true, nil
}
