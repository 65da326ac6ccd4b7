package service

import (
	"errors"
	"fmt"

	apperrors "tournament-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// validateStruct runs the struct validator and folds tag failures into the
// typed error taxonomy so handlers can map them to 400 responses.
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return apperrors.NewValidationError(first.Field(), fmt.Sprintf("failed on the '%s' rule", first.Tag()))
	}

	return fmt.Errorf("validation failed: %w", err)
}
