package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"ProteinCalculator/internal/estimator"
)

// FlexNumber accepts a JSON number, a numeric string, or null. Anything else
// decodes to 0 so that bad form values are coerced rather than rejected.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*n = 0
			return nil
		}
		*n = FlexNumber(estimator.ParseNumber(s))
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

func (n FlexNumber) Float() float64 { return float64(n) }

// FlexBool accepts true/false, "on"/"1"/"yes" strings, and numbers.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*b = false
			return nil
		}
	} else {
		s = string(data)
	}
	*b = FlexBool(estimator.ParseBool(s) || estimator.ParseNumber(s) > 0)
	return nil
}
