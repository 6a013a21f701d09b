package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance to avoid creating multiple instances
var validate *validator.Validate

var (
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	phoneRe   = regexp.MustCompile(`^[0-9]{10}$`)
)

func init() {
	validate = validator.New()

	// Shipping address rules: pincode is exactly six digits, phone
	// exactly ten. Validated at submission time only.
	_ = validate.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}

// Get returns the shared validator instance
func Get() *validator.Validate {
	return validate
}
