// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnauthorized is returned when admin credentials do not match
var ErrUnauthorized = errors.New("invalid username or password")

// ValidationError lists the request fields that were missing or malformed
type ValidationError struct {
	Fields  []string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NewValidation builds a ValidationError. An empty msg falls back to the field list.
func NewValidation(msg string, fields ...string) error {
	return &ValidationError{Fields: fields, Message: msg}
}

// ErrRecordNotFound is returned when a record id is absent from a collection
type ErrRecordNotFound struct {
	Collection string
	ID         string
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("record %s not found in %s", e.ID, e.Collection)
}

// Helper constructor
func NewRecordNotFound(collection, id string) error {
	return &ErrRecordNotFound{Collection: collection, ID: id}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is (or wraps) an ErrRecordNotFound
func IsNotFound(err error) bool {
	var nf *ErrRecordNotFound
	return errors.As(err, &nf)
}
