package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

// Forbidden is returned when the caller does not own the resource it tries to mutate.
func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func Unauthorized(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

func BadRequest(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

func hasStatus(err error, code int) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == code
}

func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// Operation identifies the entity a validation error was raised for.
type Operation string

const (
	OpAddThread    Operation = "ADD_THREAD"
	OpAddComment   Operation = "ADD_COMMENT"
	OpAddReply     Operation = "ADD_REPLY"
	OpAddedThread  Operation = "ADDED_THREAD"
	OpAddedComment Operation = "ADDED_COMMENT"
	OpAddedReply   Operation = "ADDED_REPLY"
)

type Reason string

const (
	ReasonMissingProperty Reason = "NOT_CONTAIN_NEEDED_PROPERTY"
	ReasonWrongType       Reason = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError carries a structured code only.
// Human readable text is resolved at the transport boundary.
type ValidationError struct {
	Op     Operation
	Reason Reason
}

func (e *ValidationError) Error() string {
	return e.Code()
}

// Code returns the "<OPERATION>.<REASON>" key used by the message tables.
func (e *ValidationError) Code() string {
	return string(e.Op) + "." + string(e.Reason)
}

func NewValidationError(op Operation, reason Reason) error {
	return &ValidationError{Op: op, Reason: reason}
}

// AsValidation returns the first ValidationError in err's chain.
func AsValidation(err error) (*ValidationError, bool) {
	var e *ValidationError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// MethodNotImplementedError is returned by repository stubs that do not
// provide the called method. Production wiring never reaches it.
type MethodNotImplementedError struct {
	Repository string
}

func (e *MethodNotImplementedError) Error() string {
	return e.Repository + ".METHOD_NOT_IMPLEMENTED"
}

func NotImplemented(repository string) error {
	return &MethodNotImplementedError{Repository: repository}
}

func IsNotImplemented(err error) bool {
	var e *MethodNotImplementedError
	return errors.As(err, &e)
}
