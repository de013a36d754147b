/*
Package payroll computes the monthly pay of a teaching employee.

PURPOSE:
  Turns hours worked (ordinary, night, Sunday/holiday) and an hourly rate
  into gross pay, subtracts the statutory withholdings that apply to the
  employee's contract type, and reports the result.

KEY CONCEPTS IN THIS FILE (types.go):
  - ContractType: FullTime or PartTime (closed set)
  - Input: the five values a computation needs
  - Result: gross, deductions, net and the deduction breakdown

DESIGN PRINCIPLES:
  1. Purity: Compute reads and writes no shared state and never logs
  2. Precision: decimal.Decimal end to end, rounding only on output
  3. Fixed policy: surcharges and deduction rates are constants

USAGE:
  res, err := payroll.Compute(payroll.FullTime, 160, 0, 0, 50000)
  if err != nil {
      kind, _ := payroll.KindOf(err)
      ...
  }
  fmt.Println(res.NetPay) // 6693600

SEE ALSO:
  - calculator.go: Validation and arithmetic
  - rates.go: Surcharges and deduction rates
  - errors.go: Validation error kinds
*/
package payroll

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CONTRACT TYPE
// =============================================================================

// ContractType selects the severance accrual rate.
type ContractType string

const (
	FullTime ContractType = "full_time"
	PartTime ContractType = "part_time"
)

// contractAliases maps accepted spellings to the canonical tag.
var contractAliases = map[string]ContractType{
	"full_time":       FullTime,
	"fulltime":        FullTime,
	"tiempo_completo": FullTime,
	"part_time":       PartTime,
	"parttime":        PartTime,
	"medio_tiempo":    PartTime,
}

// Valid reports whether c is one of the recognised contract types.
func (c ContractType) Valid() bool {
	return c == FullTime || c == PartTime
}

func (c ContractType) String() string { return string(c) }

// NormalizeContractType maps a tag to its canonical ContractType.
// Unknown tags are returned unchanged; Compute rejects them.
func NormalizeContractType(tag string) ContractType {
	if c, ok := contractAliases[strings.ToLower(strings.TrimSpace(tag))]; ok {
		return c
	}
	return ContractType(tag)
}

// =============================================================================
// INPUT
// =============================================================================

// Input holds the values of a single computation.
type Input struct {
	ContractType ContractType
	DayHours     float64
	NightHours   float64
	HolidayHours float64
	HourlyRate   float64
}

// Compute is shorthand for payroll.Compute with the fields of in.
func (in Input) Compute() (Result, error) {
	return Compute(in.ContractType, in.DayHours, in.NightHours, in.HolidayHours, in.HourlyRate)
}

// =============================================================================
// RESULT
// =============================================================================

// DeductionBreakdown splits TotalDeductions by statutory category.
type DeductionBreakdown struct {
	Health           decimal.Decimal
	Pension          decimal.Decimal
	SeveranceAccrual decimal.Decimal
}

// Sum adds the three categories.
func (d DeductionBreakdown) Sum() decimal.Decimal {
	return d.Health.Add(d.Pension).Add(d.SeveranceAccrual)
}

// Result is the outcome of a successful computation.
// Every amount is rounded to two decimal places independently, so
// TotalDeductions may differ from Deductions.Sum() by a cent.
type Result struct {
	GrossPay        decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	ContractType    ContractType
	Deductions      DeductionBreakdown
}
