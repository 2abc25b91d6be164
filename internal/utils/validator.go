// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/eventide-app/eventide-backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("event_category", validateEventCategory)
	validate.RegisterValidation("order_status", validateOrderStatus)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("calendar_date", validateCalendarDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEventCategory(fl validator.FieldLevel) bool {
	return models.ValidEventCategory(fl.Field().String())
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.OrderStatus(fl.Field().String()).Valid()
}

// HH:MM, 24-hour
func validateClockTime(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^([01][0-9]|2[0-3]):[0-5][0-9]$`, fl.Field().String())
	return matched
}

// YYYY-MM-DD
func validateCalendarDate(fl validator.FieldLevel) bool {
	matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, fl.Field().String())
	return matched
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
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "event_category":
		return "Unknown event category"
	case "order_status":
		return "Unknown order status"
	case "clock_time":
		return "Time must be HH:MM"
	case "calendar_date":
		return "Date must be YYYY-MM-DD"
	default:
		return e.Field() + " is invalid"
	}
}
