package validation

import (
	"fmt"
	"math"
	"time"
)

// Closed enumerations accepted at the HTTP boundary
var (
	VehicleClasses = []string{"ev", "50cc", "125cc", "250cc", "400cc", "950cc", "1100cc", "1500cc"}
	PaymentTypes   = []string{"ec_credit", "onsite_cash", "onsite_credit"}
	RefundTypes    = []string{"none", "full", "same_day_50"}
	CouponTypes    = []string{"fixed", "percent"}
)

// ValidatePercent validates a percentage expressed as 0-100
func ValidatePercent(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("percent must be a number, got: %v", p)
	}
	if p < 0 || p > 100 {
		return fmt.Errorf("percent must be between 0 and 100, got: %v", p)
	}
	return nil
}

// ValidateDateRange validates a report range: end not before start, and at
// most maxDays calendar days with both ends included
func ValidateDateRange(start, end time.Time, maxDays int) error {
	if end.Before(start) {
		return &ValidationError{
			Errors: map[string]string{
				"date_range": "End date must not be before start date",
			},
		}
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if maxDays > 0 && days > maxDays {
		return &ValidationError{
			Errors: map[string]string{
				"date_range": fmt.Sprintf("Date range spans %d days, maximum is %d", days, maxDays),
			},
		}
	}
	return nil
}

// ValidateRentalWindow validates that a rental ends strictly after it starts
func ValidateRentalWindow(start, end time.Time) error {
	if !end.After(start) {
		return &ValidationError{
			Errors: map[string]string{
				"end_at": "End time must be after start time",
			},
		}
	}
	return nil
}
