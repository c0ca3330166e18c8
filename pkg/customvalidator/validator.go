package customvalidator

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "employee-system/pkg/errors"
)

// CustomValidator adapts go-playground/validator to echo's Validator
// interface. Domain invariants live in internal/validation; this layer only
// covers transport DTO tags (required, email and the like).
type CustomValidator struct {
	validator *validator.Validate
}

func New() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err)
	}
	return nil
}
