package main

import (
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/validator"
)

// Validation rules

func validateSaveUser(v *validator.Validator, request requestSaveUser) {
	validateFullName(v, request.FullName)
	if request.Level != nil {
		validateLevel(v, string(*request.Level))
	}
}

func validateFullName(v *validator.Validator, fullName string) {
	v.CheckField(validator.NotBlank(fullName), "fullName", "Full Name is required")
	v.CheckField(validator.MaxRunes(fullName, 200), "fullName", "must be at most 200 characters")
}

func validateLevel(v *validator.Validator, level string) {
	v.CheckField(validator.In(level, "", "1", "2", "3"), "level", "must be 1, 2 or 3")
}
