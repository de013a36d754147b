/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the payroll package from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Payroll:
    factory.InputJSON (request), PayrollResultDTO, DeductionBreakdownDTO

  Batch:
    BatchRequest, BatchResponseDTO, BatchItemDTO

  Rates:
    RatesDTO, DeductionRatesDTO

  Scenarios:
    ScenarioDTO, RunScenarioRequest, ScenarioRunDTO

VALIDATION:
  Validation is done by payroll.Compute, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/input.go: InputJSON type
*/
package api

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/shopspring/decimal"
	"github.com/warp/payroll-engine/factory"
	"github.com/warp/payroll-engine/payroll"
)

// =============================================================================
// PAYROLL
// =============================================================================

// PayrollResultDTO is a computed payroll.
type PayrollResultDTO struct {
	GrossPay           float64               `json:"gross_pay"`
	TotalDeductions    float64               `json:"total_deductions"`
	NetPay             float64               `json:"net_pay"`
	ContractType       string                `json:"contract_type"`
	DeductionBreakdown DeductionBreakdownDTO `json:"deduction_breakdown"`
}

// DeductionBreakdownDTO splits total deductions by category.
type DeductionBreakdownDTO struct {
	Health           float64 `json:"health"`
	Pension          float64 `json:"pension"`
	SeveranceAccrual float64 `json:"severance_accrual"`
}

// =============================================================================
// BATCH
// =============================================================================

// BatchRequest computes several payrolls in one call.
type BatchRequest struct {
	Items []json.RawMessage `json:"items"`
}

// BatchResponseDTO holds one entry per request item, in request order.
type BatchResponseDTO struct {
	BatchID   string         `json:"batch_id"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Items     []BatchItemDTO `json:"items"`
}

// BatchItemDTO carries either a result or an error.
type BatchItemDTO struct {
	Index  int               `json:"index"`
	Result *PayrollResultDTO `json:"result,omitempty"`
	Error  *ErrorResponse    `json:"error,omitempty"`
}

// =============================================================================
// RATES
// =============================================================================

// RatesDTO describes the fixed payroll policy.
type RatesDTO struct {
	NightMultiplier   float64                      `json:"night_multiplier"`
	HolidayMultiplier float64                      `json:"holiday_multiplier"`
	MaxMonthlyHours   float64                      `json:"max_monthly_hours"`
	Deductions        map[string]DeductionRatesDTO `json:"deductions"`
}

// DeductionRatesDTO are fractions of gross pay.
type DeductionRatesDTO struct {
	Health           float64 `json:"health"`
	Pension          float64 `json:"pension"`
	SeveranceAccrual float64 `json:"severance_accrual"`
	Total            float64 `json:"total"`
}

// =============================================================================
// SCENARIOS
// =============================================================================

// ScenarioDTO represents a reference scenario.
type ScenarioDTO struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Category    string            `json:"category"` // "surcharge", "contract", "rounding" or "validation"
	Input       factory.InputJSON `json:"input"`
}

// RunScenarioRequest selects the scenario to run.
type RunScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ScenarioRunDTO is the outcome of running a scenario.
type ScenarioRunDTO struct {
	Scenario ScenarioDTO       `json:"scenario"`
	Result   *PayrollResultDTO `json:"result,omitempty"`
	Error    *ErrorResponse    `json:"error,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

// errAmountOutOfRange is returned when a computed amount has no float64 form.
var errAmountOutOfRange = errors.New("computed amount is too large to represent")

func toPayrollResultDTO(res payroll.Result) (*PayrollResultDTO, error) {
	amounts := []decimal.Decimal{
		res.GrossPay, res.TotalDeductions, res.NetPay,
		res.Deductions.Health, res.Deductions.Pension, res.Deductions.SeveranceAccrual,
	}
	for _, a := range amounts {
		if f := toFloat(a); math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, errAmountOutOfRange
		}
	}

	return &PayrollResultDTO{
		GrossPay:        toFloat(res.GrossPay),
		TotalDeductions: toFloat(res.TotalDeductions),
		NetPay:          toFloat(res.NetPay),
		ContractType:    string(res.ContractType),
		DeductionBreakdown: DeductionBreakdownDTO{
			Health:           toFloat(res.Deductions.Health),
			Pension:          toFloat(res.Deductions.Pension),
			SeveranceAccrual: toFloat(res.Deductions.SeveranceAccrual),
		},
	}, nil
}

func toRatesDTO(table payroll.RateTable) RatesDTO {
	dto := RatesDTO{
		NightMultiplier:   toFloat(table.NightMultiplier),
		HolidayMultiplier: toFloat(table.HolidayMultiplier),
		MaxMonthlyHours:   toFloat(table.MaxMonthlyHours),
		Deductions:        make(map[string]DeductionRatesDTO, len(table.Deductions)),
	}
	for c, r := range table.Deductions {
		dto.Deductions[string(c)] = DeductionRatesDTO{
			Health:           toFloat(r.Health),
			Pension:          toFloat(r.Pension),
			SeveranceAccrual: toFloat(r.SeveranceAccrual),
			Total:            toFloat(r.Total()),
		}
	}
	return dto
}

// toValidationErrorResponse maps a payroll error to its wire form.
func toValidationErrorResponse(err error) *ErrorResponse {
	resp := &ErrorResponse{Error: err.Error()}
	var verr *payroll.ValidationError
	if errors.As(err, &verr) {
		resp.Code = string(verr.Kind)
		resp.Field = verr.Field
	}
	return resp
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
