package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// ValidationError señala un campo requerido ausente o no parseable.
// Envuelve ErrInvalidInput para que errors.Is(err, ErrInvalidInput) funcione
// en los handlers sin perder el nombre del campo ofensor.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo %q requerido o inválido", e.Field)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError construye el error de validación para el campo indicado.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
