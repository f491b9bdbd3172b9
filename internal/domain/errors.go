package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDecode       = errors.New("código escaneado inválido")
	ErrStorage      = errors.New("fallo de almacenamiento local")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// ValidationError indica que el llamador envió un campo requerido vacío o inválido.
// Nunca se reintenta automáticamente.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError construye un ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validación: " + e.Reason
	}
	return fmt.Sprintf("validación: %s: %s", e.Field, e.Reason)
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// DecodeError indica un payload escaneado malformado o incompleto; se recupera reescaneando.
type DecodeError struct {
	Reason string
	Err    error
}

// NewDecodeError construye un DecodeError; err puede ser nil.
func NewDecodeError(reason string, err error) *DecodeError {
	return &DecodeError{Reason: reason, Err: err}
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decodificar código: %s: %v", e.Reason, e.Err)
	}
	return "decodificar código: " + e.Reason
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func (e *DecodeError) Unwrap() error { return e.Err }

// StorageError envuelve un fallo de lectura/escritura del almacén local.
// La operación que lo produce se considera no realizada.
type StorageError struct {
	Op  string
	Key string
	Err error
}

// NewStorageError construye un StorageError.
func NewStorageError(op, key string, err error) *StorageError {
	return &StorageError{Op: op, Key: key, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("almacén %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func (e *StorageError) Unwrap() error { return e.Err }
