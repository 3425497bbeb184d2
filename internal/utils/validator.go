// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("card_number", validateCardNumber)
	validate.RegisterValidation("card_expiry", validateCardExpiry)
	validate.RegisterValidation("cvv", validateCVV)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCardNumber(fl validator.FieldLevel) bool {
	number := fl.Field().String()

	if len(number) < 13 || len(number) > 19 {
		return false
	}

	return digitsOnly(number)
}

// MM/YY
func validateCardExpiry(fl validator.FieldLevel) bool {
	return expiryPattern.MatchString(fl.Field().String())
}

func validateCVV(fl validator.FieldLevel) bool {
	cvv := fl.Field().String()

	if len(cvv) < 3 || len(cvv) > 4 {
		return false
	}

	return digitsOnly(cvv)
}

func digitsOnly(s string) bool {
	for _, char := range s {
		if !unicode.IsDigit(char) {
			return false
		}
	}
	return s != ""
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "card_number":
		return "Card number must be 13 to 19 digits"
	case "card_expiry":
		return "Expiry date must be MM/YY format"
	case "cvv":
		return "CVV must be 3 or 4 digits"
	case "eq":
		return e.Field() + " must be accepted"
	default:
		return e.Field() + " is invalid"
	}
}
