package utils

import (
	"strings"
	"vetcare-service/internal/app/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("day_key", validateDayKey)
	validate.RegisterValidation("slot_label", validateSlotLabel)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateDayKey(fl validator.FieldLevel) bool {
	return models.DayKey(fl.Field().String()).IsValid()
}

// Slot labels are free text ("9:00 AM", "14:30"); only emptiness is rejected.
func validateSlotLabel(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
