/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a table or input file does not exist
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when registering a name that is already taken
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is returned when operator input or configuration is malformed
	ErrInvalidInput = errors.New("invalid input")

	// ErrTransport is returned when the backing store cannot be reached or read
	ErrTransport = errors.New("transport failure")
)

// NotFoundError represents a missing table or file
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents a duplicate registration
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s %q already registered", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// TransportError wraps a failure talking to the backing store. The export
// aborts without writing anything when one is returned.
type TransportError struct {
	Op    string
	Table string
	Err   error
}

func (e *TransportError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(kind, key string) error {
	return &NotFoundError{Type: kind, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(kind, key string) error {
	return &AlreadyExistsError{Type: kind, Key: key}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewTransportError creates a new TransportError
func NewTransportError(op, table string, err error) error {
	return &TransportError{Op: op, Table: table, Err: err}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsTransport checks if an error is a transport error
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}
