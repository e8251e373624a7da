package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// Validate is the global validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Report fields by their JSON names
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Register custom validators
	_ = Validate.RegisterValidation("vehicle_class", validateVehicleClass)
	_ = Validate.RegisterValidation("payment_type", validatePaymentType)
	_ = Validate.RegisterValidation("refund_type", validateRefundType)
	_ = Validate.RegisterValidation("coupon_type", validateCouponType)
	_ = Validate.RegisterValidation("percent", validatePercent)
}

// ValidateStruct validates a struct and returns a ValidationError if validation fails
func ValidateStruct(s interface{}) error {
	err := Validate.Struct(s)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return NewValidationError(validationErrors)
		}
		return err
	}
	return nil
}

func validateVehicleClass(fl validator.FieldLevel) bool {
	return contains(VehicleClasses, fl.Field().String())
}

func validatePaymentType(fl validator.FieldLevel) bool {
	return contains(PaymentTypes, fl.Field().String())
}

func validateRefundType(fl validator.FieldLevel) bool {
	return contains(RefundTypes, fl.Field().String())
}

func validateCouponType(fl validator.FieldLevel) bool {
	return contains(CouponTypes, fl.Field().String())
}

// validatePercent accepts a percentage expressed as 0-100, not a fraction
func validatePercent(fl validator.FieldLevel) bool {
	return ValidatePercent(fl.Field().Float()) == nil
}

// contains checks if a string slice contains a specific string
func contains(slice []string, item string) bool {
	item = strings.ToLower(strings.TrimSpace(item))
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
