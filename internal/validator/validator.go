// Package validator registers the custom binding rules used by the API.
package validator

import (
	"frent-client/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateGenre validates that a string is one of the catalog genres
func validateGenre(fl validator.FieldLevel) bool {
	return models.Genre(fl.Field().String()).Valid()
}

// register adds every custom rule to v
func register(v *validator.Validate) error {
	return v.RegisterValidation("genre", validateGenre)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = register(v)
	}
}
