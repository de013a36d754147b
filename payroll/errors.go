/*
errors.go - Validation error kinds for payroll computations

PURPOSE:
  Every failure of Compute is an input validation failure. Each kind has a
  sentinel for errors.Is and a stable wire code for API clients.

USAGE:
  _, err := payroll.Compute(payroll.FullTime, -10, 0, 0, 50000)
  errors.Is(err, payroll.ErrInvalidDayHours) // true

  var verr *payroll.ValidationError
  if errors.As(err, &verr) {
      fmt.Println(verr.Kind, verr.Field)
  }
*/
package payroll

import (
	"errors"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation matches every error returned by Compute.
	ErrValidation = errors.New("payroll validation failed")

	ErrInvalidDayHours         = errors.New("day hours must be a non-negative number")
	ErrInvalidNightHours       = errors.New("night hours must be a non-negative number")
	ErrInvalidHolidayHours     = errors.New("holiday hours must be a non-negative number")
	ErrInvalidHourlyRate       = errors.New("hourly rate must be a positive number")
	ErrMaxMonthlyHoursExceeded = errors.New("total hours exceed the monthly maximum of 220")
	ErrNoHoursWorked           = errors.New("at least one hour must be worked")
	ErrInvalidContractType     = errors.New("contract type must be full_time or part_time")
)

// =============================================================================
// KINDS
// =============================================================================

// Kind identifies why an input was rejected.
type Kind string

const (
	KindInvalidDayHours         Kind = "invalid_day_hours"
	KindInvalidNightHours       Kind = "invalid_night_hours"
	KindInvalidHolidayHours     Kind = "invalid_holiday_hours"
	KindInvalidHourlyRate       Kind = "invalid_hourly_rate"
	KindMaxMonthlyHoursExceeded Kind = "max_monthly_hours_exceeded"
	KindNoHoursWorked           Kind = "no_hours_worked"
	KindInvalidContractType     Kind = "invalid_contract_type"
)

var kindSentinels = map[Kind]error{
	KindInvalidDayHours:         ErrInvalidDayHours,
	KindInvalidNightHours:       ErrInvalidNightHours,
	KindInvalidHolidayHours:     ErrInvalidHolidayHours,
	KindInvalidHourlyRate:       ErrInvalidHourlyRate,
	KindMaxMonthlyHoursExceeded: ErrMaxMonthlyHoursExceeded,
	KindNoHoursWorked:           ErrNoHoursWorked,
	KindInvalidContractType:     ErrInvalidContractType,
}

// Kinds lists every kind in validation order.
func Kinds() []Kind {
	return []Kind{
		KindInvalidDayHours,
		KindInvalidNightHours,
		KindInvalidHolidayHours,
		KindInvalidHourlyRate,
		KindMaxMonthlyHoursExceeded,
		KindNoHoursWorked,
		KindInvalidContractType,
	}
}

// =============================================================================
// STRUCTURED ERROR
// =============================================================================

// ValidationError reports the rejected input.
type ValidationError struct {
	Kind  Kind
	Field string // input that failed; "hours" for the total-hours checks
}

func newValidationError(kind Kind, field string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field}
}

func (e *ValidationError) Error() string {
	return e.Unwrap().Error()
}

// Unwrap returns the kind's sentinel.
func (e *ValidationError) Unwrap() error {
	if s, ok := kindSentinels[e.Kind]; ok {
		return s
	}
	return ErrValidation
}

// Is lets errors.Is(err, ErrValidation) match any kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// KindOf extracts the Kind from err.
func KindOf(err error) (Kind, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return "", false
}

// IsValidationError returns true if err was produced by input validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
