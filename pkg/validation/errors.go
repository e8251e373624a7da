package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError collects per-field validation messages
type ValidationError struct {
	Errors map[string]string `json:"errors"`
}

// NewValidationError converts validator errors into a ValidationError keyed by field name
func NewValidationError(errs validator.ValidationErrors) *ValidationError {
	ve := &ValidationError{Errors: make(map[string]string, len(errs))}
	for _, fe := range errs {
		ve.AddError(fieldName(fe), messageFor(fe))
	}
	return ve
}

// Error implements the error interface with fields in a stable order
func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Errors[field])
	}
	return strings.Join(parts, "; ")
}

// AddError records a message for a field
func (e *ValidationError) AddError(field, message string) {
	if e.Errors == nil {
		e.Errors = make(map[string]string)
	}
	e.Errors[field] = message
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// GetFieldError returns the message recorded for field
func (e *ValidationError) GetFieldError(field string) (string, bool) {
	msg, ok := e.Errors[field]
	return msg, ok
}

func fieldName(fe validator.FieldError) string {
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	name := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "percent":
		return name + " must be between 0 and 100"
	case "vehicle_class":
		return fmt.Sprintf("%s must be one of %s", name, strings.Join(VehicleClasses, ", "))
	case "payment_type":
		return fmt.Sprintf("%s must be one of %s", name, strings.Join(PaymentTypes, ", "))
	case "refund_type":
		return fmt.Sprintf("%s must be one of %s", name, strings.Join(RefundTypes, ", "))
	case "coupon_type":
		return fmt.Sprintf("%s must be one of %s", name, strings.Join(CouponTypes, ", "))
	case "gt", "gte", "lt", "lte", "min", "max":
		return fmt.Sprintf("%s failed %s=%s", name, fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
	}
}
