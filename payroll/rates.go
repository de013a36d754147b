package payroll

import (
	"github.com/shopspring/decimal"
)

// Regulatory constants. Parsed from decimal literals so the arithmetic
// never sees a binary float approximation of them.
var (
	nightMultiplier   = decimal.RequireFromString("1.35")
	holidayMultiplier = decimal.RequireFromString("1.75")
	maxMonthlyHours   = decimal.NewFromInt(220)

	healthRate            = decimal.RequireFromString("0.04")
	pensionRate           = decimal.RequireFromString("0.04")
	fullTimeSeveranceRate = decimal.RequireFromString("0.0833")
	partTimeSeveranceRate = decimal.RequireFromString("0.0417")
)

// outputPlaces is the number of decimals every reported amount is rounded to.
const outputPlaces = 2

// DeductionRates are the fractions of gross pay withheld per category.
type DeductionRates struct {
	Health           decimal.Decimal
	Pension          decimal.Decimal
	SeveranceAccrual decimal.Decimal
}

// Total is the combined withholding fraction.
func (r DeductionRates) Total() decimal.Decimal {
	return r.Health.Add(r.Pension).Add(r.SeveranceAccrual)
}

// DeductionRates returns the rates for c, or an InvalidContractType error.
func (c ContractType) DeductionRates() (DeductionRates, error) {
	switch c {
	case FullTime:
		return DeductionRates{Health: healthRate, Pension: pensionRate, SeveranceAccrual: fullTimeSeveranceRate}, nil
	case PartTime:
		return DeductionRates{Health: healthRate, Pension: pensionRate, SeveranceAccrual: partTimeSeveranceRate}, nil
	default:
		return DeductionRates{}, newValidationError(KindInvalidContractType, "contract_type")
	}
}

// RateTable describes the whole fixed policy.
type RateTable struct {
	NightMultiplier   decimal.Decimal
	HolidayMultiplier decimal.Decimal
	MaxMonthlyHours   decimal.Decimal
	Deductions        map[ContractType]DeductionRates
}

// Rates returns a fresh copy of the policy table.
func Rates() RateTable {
	full, _ := FullTime.DeductionRates()
	part, _ := PartTime.DeductionRates()
	return RateTable{
		NightMultiplier:   nightMultiplier,
		HolidayMultiplier: holidayMultiplier,
		MaxMonthlyHours:   maxMonthlyHours,
		Deductions: map[ContractType]DeductionRates{
			FullTime: full,
			PartTime: part,
		},
	}
}
