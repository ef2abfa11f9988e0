package jira

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorRecord is one normalized error reported by the server. Field is empty
// for flat messages and holds the offending field name for field-qualified ones.
type ErrorRecord struct {
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Message string `json:"message"         yaml:"message"`
}

// IsFieldQualified reports whether the record names a field.
func (r ErrorRecord) IsFieldQualified() bool {
	return r.Field != ""
}

// String implements fmt.Stringer.
func (r ErrorRecord) String() string {
	if r.IsFieldQualified() {
		return r.Field + ": " + r.Message
	}

	return r.Message
}

// Messages returns the message text of every record, in order.
func Messages(records []ErrorRecord) []string {
	messages := make([]string, 0, len(records))
	for _, record := range records {
		messages = append(messages, record.Message)
	}

	return messages
}

// ClientError is the single error type returned by every remote operation.
//
// StatusCode is zero when the failure happened before a status code was known
// (transport failure). Errors holds the normalized error records reported by
// the server and may be empty. Cause is the lower-level failure, if any.
type ClientError struct {
	StatusCode int
	Errors     []ErrorRecord
	Cause      error
}

// NewTransportError reports a failure that happened before any response arrived.
func NewTransportError(cause error) *ClientError {
	return &ClientError{Cause: cause}
}

// NewStatusError reports a non-success response with its normalized errors.
func NewStatusError(statusCode int, records []ErrorRecord) *ClientError {
	return &ClientError{StatusCode: statusCode, Errors: records}
}

// NewDecodeFailure reports a response body that could not be decoded.
func NewDecodeFailure(statusCode int, cause error) *ClientError {
	return &ClientError{StatusCode: statusCode, Cause: cause}
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	var builder strings.Builder

	builder.WriteString("jira client error")

	if e.StatusCode != 0 {
		_, _ = fmt.Fprintf(&builder, " (status %d)", e.StatusCode)
	}

	switch len(e.Errors) {
	case 0:
	case 1:
		builder.WriteString(": ")
		builder.WriteString(e.Errors[0].String())
	default:
		parts := make([]string, 0, len(e.Errors))
		for _, record := range e.Errors {
			parts = append(parts, record.String())
		}

		_, _ = fmt.Fprintf(&builder, ": multiple errors: [%s]", strings.Join(parts, "; "))
	}

	if e.Cause != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Cause.Error())
	}

	return builder.String()
}

// Unwrap returns the lower-level cause.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// Status returns the HTTP status code and whether one is known.
func (e *ClientError) Status() (int, bool) {
	return e.StatusCode, e.StatusCode != 0
}

// Messages returns the message text of every error record.
func (e *ClientError) Messages() []string {
	return Messages(e.Errors)
}

// DecodeError reports a JSON payload that does not match the expected shape.
// Path locates the offending node, e.g. "$.fields.summary".
type DecodeError struct {
	Path    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying parse failure.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired         = errors.New("config is required")
	ErrServerURIRequired      = errors.New("server URI is required")
	ErrPromiseAlreadyResolved = errors.New("promise already resolved")
	ErrEncodeFailed           = errors.New("encoding request entity failed")
)

// AsClientError extracts a *ClientError from err.
func AsClientError(err error) (*ClientError, bool) {
	clientErr := &ClientError{}
	if errors.As(err, &clientErr) {
		return clientErr, true
	}

	return nil, false
}

// StatusCode returns the HTTP status carried by err, or zero.
func StatusCode(err error) int {
	clientErr, ok := AsClientError(err)
	if !ok {
		return 0
	}

	return clientErr.StatusCode
}

// IsDecodeError checks if err was caused by an undecodable payload.
func IsDecodeError(err error) bool {
	decodeErr := &DecodeError{}

	return errors.As(err, &decodeErr)
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}
