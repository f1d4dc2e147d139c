package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing collection.
	ErrNotFound = errors.New("collection not found")
	// ErrAlreadyExists signals that the storage engine already holds the collection.
	ErrAlreadyExists = errors.New("collection already exists")
	// ErrInvalidCollectionName signals a collection name that fails naming rules.
	ErrInvalidCollectionName = errors.New("invalid collection name")
	// ErrInvalidSchema signals an inconsistent schema definition.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrMissingField signals a field present in one per-field map but absent from another.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidEnumValue signals a metric/index/field type string outside the fixed tables.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrUnexpected signals a failure outside the client-facing taxonomy.
	ErrUnexpected = errors.New("unexpected error")
)

// MissingFieldError wraps ErrMissingField with the field name and the map it was absent from.
type MissingFieldError struct {
	Field string
	Map   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: field %q has no entry in %s", ErrMissingField.Error(), e.Field, e.Map)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// UnknownEnumError wraps ErrInvalidEnumValue with the enum kind and the rejected value.
type UnknownEnumError struct {
	Kind  string
	Value string
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("%s: unknown %s %q", ErrInvalidEnumValue.Error(), e.Kind, e.Value)
}

func (e *UnknownEnumError) Unwrap() error { return ErrInvalidEnumValue }

// Unexpected folds an out-of-taxonomy failure into ErrUnexpected, keeping its message.
func Unexpected(err error) error {
	return fmt.Errorf("%w: %s", ErrUnexpected, err.Error())
}
