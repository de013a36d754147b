/*
Package factory provides JSON to Go payroll input conversion.

PURPOSE:
  Converts loosely typed JSON payroll requests into payroll.Input values.
  Clients send whatever they have; the factory makes sure anything that is
  not a number still reaches payroll.Compute as an invalid number, so the
  rejection carries the right kind and follows the usual validation order.

JSON SCHEMA:
  {
    "contract_type": "full_time",
    "day_hours": 160,
    "night_hours": 0,
    "holiday_hours": 0,
    "hourly_rate": 50000
  }

DECODING RULES:
  - JSON numbers decode as float64
  - Strings, booleans, objects, arrays and null decode as NaN
  - Absent hour fields default to 0; an absent hourly_rate is 0
  - contract_type goes through payroll.NormalizeContractType; a non-string
    value becomes an empty (invalid) contract type

USAGE:
  in, err := factory.ParseInput(body)
  if err != nil {
      // malformed JSON, not a validation failure
  }
  res, err := in.Compute()

SEE ALSO:
  - payroll/calculator.go: Validation order
  - api/handlers.go: Uses ParseInput for every request
*/
package factory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// InputJSON is the wire form of a payroll request. Fields stay raw so that
// non-numeric values can be told apart from absent ones.
type InputJSON struct {
	ContractType json.RawMessage `json:"contract_type,omitempty"`
	DayHours     json.RawMessage `json:"day_hours,omitempty"`
	NightHours   json.RawMessage `json:"night_hours,omitempty"`
	HolidayHours json.RawMessage `json:"holiday_hours,omitempty"`
	HourlyRate   json.RawMessage `json:"hourly_rate,omitempty"`
}

// NewInputJSON builds the wire form of a typed input.
func NewInputJSON(in payroll.Input) InputJSON {
	return InputJSON{
		ContractType: mustMarshal(string(in.ContractType)),
		DayHours:     mustMarshal(in.DayHours),
		NightHours:   mustMarshal(in.NightHours),
		HolidayHours: mustMarshal(in.HolidayHours),
		HourlyRate:   mustMarshal(in.HourlyRate),
	}
}

// =============================================================================
// PARSING
// =============================================================================

// ParseInput decodes a JSON object into a payroll.Input.
// Only structurally malformed JSON is an error here.
func ParseInput(data []byte) (payroll.Input, error) {
	var raw InputJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return payroll.Input{}, fmt.Errorf("invalid payroll input JSON: %w", err)
	}
	return raw.ToInput(), nil
}

// ToInput converts the wire form. It never fails; see DECODING RULES.
func (j InputJSON) ToInput() payroll.Input {
	return payroll.Input{
		ContractType: contractType(j.ContractType),
		DayHours:     number(j.DayHours),
		NightHours:   number(j.NightHours),
		HolidayHours: number(j.HolidayHours),
		HourlyRate:   number(j.HourlyRate),
	}
}

func number(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	if bytes.Equal(raw, []byte("null")) {
		return math.NaN()
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return math.NaN()
	}
	return v
}

func contractType(raw json.RawMessage) payroll.ContractType {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return payroll.NormalizeContractType(s)
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		// NaN and Inf cannot be encoded; send them as strings so the
		// receiver rejects them the same way.
		b, _ = json.Marshal(fmt.Sprint(v))
	}
	return b
}
