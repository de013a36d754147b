/*
scenarios.go - Reference payroll scenarios for demos and regression checks

PURPOSE:
  Provides canned payroll inputs with well-known outcomes. They document
  the policy by example: each surcharge, both contract types, rounding,
  and every validation failure.

AVAILABLE SCENARIOS:
  full-time-ordinary:  160 ordinary hours, full-time
  part-time-ordinary:  80 ordinary hours, part-time
  night-surcharge:     10 night hours (x1.35)
  holiday-surcharge:   10 Sunday/holiday hours (x1.75)
  mixed-hours:         100 ordinary + 20 night + 10 holiday
  ...plus rounding and validation cases

USAGE VIA API:
  GET  /api/scenarios
  POST /api/scenarios/run
  {"scenario_id": "mixed-hours"}

ADDING NEW SCENARIOS:
  - Add to 'scenarios' with ID, name, description, category
  - Build the input with scenarioInput; overwrite a raw field afterwards
    when the scenario needs a non-numeric value

SEE ALSO:
  - handlers.go: ListScenarios, RunScenario handlers
  - factory/input.go: How scenario inputs are encoded and decoded
*/
package api

import (
	"encoding/json"

	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "full-time-ordinary",
		Name:        "Full-Time Ordinary Hours",
		Description: "160 ordinary hours at 50,000; severance accrues at 8.33%",
		Category:    "contract",
		Input:       scenarioInput(payroll.FullTime, 160, 0, 0, 50000),
	},
	{
		ID:          "part-time-ordinary",
		Name:        "Part-Time Ordinary Hours",
		Description: "80 ordinary hours at 50,000; severance accrues at 4.17%",
		Category:    "contract",
		Input:       scenarioInput(payroll.PartTime, 80, 0, 0, 50000),
	},
	{
		ID:          "night-surcharge",
		Name:        "Night Surcharge",
		Description: "10 night hours at 50,000 with the 35% premium",
		Category:    "surcharge",
		Input:       scenarioInput(payroll.FullTime, 0, 10, 0, 50000),
	},
	{
		ID:          "holiday-surcharge",
		Name:        "Sunday/Holiday Surcharge",
		Description: "10 Sunday/holiday hours at 50,000 with the 75% premium",
		Category:    "surcharge",
		Input:       scenarioInput(payroll.FullTime, 0, 0, 10, 50000),
	},
	{
		ID:          "mixed-hours",
		Name:        "Mixed Hours",
		Description: "100 ordinary, 20 night and 10 holiday hours at 50,000",
		Category:    "surcharge",
		Input:       scenarioInput(payroll.FullTime, 100, 20, 10, 50000),
	},
	{
		ID:          "four-hours-20k",
		Name:        "Four Hours at 20,000",
		Description: "Short month at a low hourly rate",
		Category:    "contract",
		Input:       scenarioInput(payroll.FullTime, 4, 0, 0, 20000),
	},
	{
		ID:          "four-hours-60k",
		Name:        "Four Hours at 60,000",
		Description: "Short month at a high hourly rate",
		Category:    "contract",
		Input:       scenarioInput(payroll.FullTime, 4, 0, 0, 60000),
	},
	{
		ID:          "fractional-rate",
		Name:        "Fractional Rate",
		Description: "One hour at 33,333.33; deductions need rounding",
		Category:    "rounding",
		Input:       scenarioInput(payroll.FullTime, 1, 0, 0, 33333.33),
	},
	{
		ID:          "three-decimal-rate",
		Name:        "Three-Decimal Rate",
		Description: "Three hours at 33,333.333; gross rounds up to 100,000",
		Category:    "rounding",
		Input:       scenarioInput(payroll.FullTime, 3, 0, 0, 33333.333),
	},
	{
		ID:          "negative-hours",
		Name:        "Negative Hours",
		Description: "Negative ordinary hours are rejected",
		Category:    "validation",
		Input:       scenarioInput(payroll.FullTime, -10, 0, 0, 50000),
	},
	{
		ID:          "non-numeric-hours",
		Name:        "Non-Numeric Hours",
		Description: "Text in place of ordinary hours is rejected",
		Category:    "validation",
		Input:       textDayHours(),
	},
	{
		ID:          "zero-rate",
		Name:        "Zero Hourly Rate",
		Description: "The hourly rate must be positive",
		Category:    "validation",
		Input:       scenarioInput(payroll.FullTime, 10, 0, 0, 0),
	},
	{
		ID:          "over-monthly-limit",
		Name:        "Over Monthly Limit",
		Description: "221 hours exceed the 220-hour monthly maximum",
		Category:    "validation",
		Input:       scenarioInput(payroll.FullTime, 221, 0, 0, 50000),
	},
	{
		ID:          "no-hours",
		Name:        "No Hours Worked",
		Description: "At least some time must be worked",
		Category:    "validation",
		Input:       scenarioInput(payroll.FullTime, 0, 0, 0, 50000),
	},
	{
		ID:          "invalid-contract",
		Name:        "Invalid Contract Type",
		Description: "Only full-time and part-time contracts are recognised",
		Category:    "validation",
		Input:       scenarioInput(payroll.ContractType("contrato_invalido"), 160, 0, 0, 50000),
	},
}

// findScenario returns the scenario with the given ID.
func findScenario(id string) (ScenarioDTO, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioDTO{}, false
}

// scenarioInput builds the wire form of a typed input.
func scenarioInput(c payroll.ContractType, day, night, holiday, rate float64) factory.InputJSON {
	return factory.NewInputJSON(payroll.Input{
		ContractType: c,
		DayHours:     day,
		NightHours:   night,
		HolidayHours: holiday,
		HourlyRate:   rate,
	})
}

// textDayHours carries text where ordinary hours are expected.
func textDayHours() factory.InputJSON {
	in := scenarioInput(payroll.FullTime, 0, 0, 0, 50000)
	in.DayHours = json.RawMessage(`"a"`)
	return in
}
