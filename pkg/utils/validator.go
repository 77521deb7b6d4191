package utils

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator оборачивает go-playground/validator под интерфейс
// echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
