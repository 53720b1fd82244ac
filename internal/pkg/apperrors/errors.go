package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrValidationFailed      = errors.New("validation failed")
)

// Client-facing messages carried by the student errors
const (
	MsgStudentNotFound      = "Student not found"
	MsgStudentAlreadyExists = "Student already exists"
)

// ErrStudentNotFound is returned when no student has the requested control number
var ErrStudentNotFound = NewCustomError(ErrResourceNotFound, "student not found").
	WithStatusMsg(MsgStudentNotFound)

// ErrStudentAlreadyExists is returned when a control number is already taken
var ErrStudentAlreadyExists = NewCustomError(ErrResourceAlreadyExists, "student with this control number already exists").
	WithStatusMsg(MsgStudentAlreadyExists)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err       error
	Message   string
	StatusMsg string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithStatusMsg adds a user-facing status message
func (e *CustomError) WithStatusMsg(msg string) *CustomError {
	e.StatusMsg = msg
	return e
}
