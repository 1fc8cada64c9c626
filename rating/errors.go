package rating

import (
	"fmt"
	"time"
)

// OperationError wraps every non-local failure of an operation call with the
// operation's name. Use errors.As to reach the underlying ServiceError,
// CanceledError or transport error.
type OperationError struct {
	OperationName string
	Err           error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation error %s: %v", e.OperationName, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// ServiceError is returned when the service responds with a non-2xx status
// code. The error envelope is parsed best-effort; Snapshot keeps the raw body
// for diagnostics.
type ServiceError struct {
	StatusCode    int
	Code          string
	Message       string
	RequestID     string
	Timestamp     time.Time
	RequestTarget string
	Snapshot      []byte
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf(
		"Error returned by Service.\nHttp Status Code: %d.\nError Code: %s.\nRequest Id: %s.\nMessage: %s.\nRequest Target: %s.",
		e.StatusCode, e.Code, e.RequestID, e.Message, e.RequestTarget)
}

func (e *ServiceError) HttpStatusCode() int {
	return e.StatusCode
}

// ClientError is a client-side failure such as a serialization problem.
type ClientError struct {
	Code    string
	Message string
	Err     error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("client error, %s, %s, %v", e.Code, e.Message, e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// CanceledError reports that the caller's context fired, either during a
// backoff wait or during the attempt itself. It is never retried.
type CanceledError struct {
	Err error
}

func (e *CanceledError) Error() string {
	return fmt.Sprintf("operation canceled, %v", e.Err)
}

func (e *CanceledError) Unwrap() error {
	return e.Err
}

func (e *CanceledError) Canceled() bool {
	return true
}

// ValidationError reports a missing or malformed required parameter. It is
// raised before any network activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed, %s, %s", e.Reason, e.Field)
}

func NewErrParamRequired(field string) error {
	return &ValidationError{
		Field:  field,
		Reason: "missing required field",
	}
}

func NewErrParamInvalid(field string) error {
	return &ValidationError{
		Field:  field,
		Reason: "invalid field",
	}
}
