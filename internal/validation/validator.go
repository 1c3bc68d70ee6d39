package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validator = validator.New()

func ValidateStruct(s interface{}) error {
	return Validator.Struct(s)
}

// Describe turns validator output into the short field-level messages shown
// next to the offending flag, e.g. "phone must be 10 digits".
func Describe(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var msgs []string
	for _, fe := range errs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "len":
			msgs = append(msgs, fmt.Sprintf("%s must be %s characters", field, fe.Param()))
		case "numeric":
			msgs = append(msgs, fmt.Sprintf("%s must contain digits only", field))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(msgs, "; ")
}

// AdminCredentials mirrors the admin login form checks.
type AdminCredentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// TenantCredentials mirrors the tenant login form checks: phone must be
// exactly 10 digits.
type TenantCredentials struct {
	Phone    string `validate:"required,len=10,numeric"`
	Password string `validate:"required"`
}
