/*
calculator.go - Gross pay, statutory deductions and net pay

ALGORITHM:
  1. Validate inputs in a fixed order (first failure wins):
     day hours, night hours, holiday hours, hourly rate,
     total <= 220, total > 0
  2. gross = day*rate + night*rate*1.35 + holiday*rate*1.75
  3. Pick deduction rates for the contract type (unknown type fails here)
  4. health, pension, severance = gross * rate
  5. total = health + pension + severance, net = gross - total
  6. Round every reported amount to 2 decimals

Intermediate values keep full precision; only step 6 rounds.
*/
package payroll

import (
	"math"

	"github.com/shopspring/decimal"
)

// Compute calculates the payroll for one employee and month.
// On invalid input it returns a *ValidationError and a zero Result.
func Compute(contractType ContractType, dayHours, nightHours, holidayHours, hourlyRate float64) (Result, error) {
	day, err := hoursValue(dayHours, KindInvalidDayHours, "day_hours")
	if err != nil {
		return Result{}, err
	}
	night, err := hoursValue(nightHours, KindInvalidNightHours, "night_hours")
	if err != nil {
		return Result{}, err
	}
	holiday, err := hoursValue(holidayHours, KindInvalidHolidayHours, "holiday_hours")
	if err != nil {
		return Result{}, err
	}
	if !isNumber(hourlyRate) || hourlyRate <= 0 {
		return Result{}, newValidationError(KindInvalidHourlyRate, "hourly_rate")
	}
	rate := decimal.NewFromFloat(hourlyRate)

	total := day.Add(night).Add(holiday)
	if total.GreaterThan(maxMonthlyHours) {
		return Result{}, newValidationError(KindMaxMonthlyHoursExceeded, "hours")
	}
	if !total.IsPositive() {
		return Result{}, newValidationError(KindNoHoursWorked, "hours")
	}

	gross := day.Mul(rate).
		Add(night.Mul(rate).Mul(nightMultiplier)).
		Add(holiday.Mul(rate).Mul(holidayMultiplier))

	rates, err := contractType.DeductionRates()
	if err != nil {
		return Result{}, err
	}

	deductions := DeductionBreakdown{
		Health:           gross.Mul(rates.Health),
		Pension:          gross.Mul(rates.Pension),
		SeveranceAccrual: gross.Mul(rates.SeveranceAccrual),
	}
	totalDeductions := deductions.Sum()
	net := gross.Sub(totalDeductions)

	return Result{
		GrossPay:        gross.Round(outputPlaces),
		TotalDeductions: totalDeductions.Round(outputPlaces),
		NetPay:          net.Round(outputPlaces),
		ContractType:    contractType,
		Deductions: DeductionBreakdown{
			Health:           deductions.Health.Round(outputPlaces),
			Pension:          deductions.Pension.Round(outputPlaces),
			SeveranceAccrual: deductions.SeveranceAccrual.Round(outputPlaces),
		},
	}, nil
}

func hoursValue(v float64, kind Kind, field string) (decimal.Decimal, error) {
	if !isNumber(v) || v < 0 {
		return decimal.Zero, newValidationError(kind, field)
	}
	return decimal.NewFromFloat(v), nil
}

// isNumber rejects NaN and the infinities. Decoders map non-numeric
// input to NaN, so this is also the "not a number at all" check.
func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
