package visualizer

import (
	"errors"
	"fmt"
)

// ErrEmptyPrompt is returned when a prompt is empty after trimming.
var ErrEmptyPrompt = errors.New("empty prompt")

// ErrorCategory classifies backend errors for reporting.
// Nothing in this module retries; the category only informs logs and callers.
type ErrorCategory string

const (
	// ErrorTransient indicates a temporary condition such as a rate limit or server overload.
	ErrorTransient ErrorCategory = "transient"

	// ErrorPermanent indicates a condition a resend cannot fix, such as an invalid API key.
	ErrorPermanent ErrorCategory = "permanent"

	// ErrorUserInput indicates the request itself was rejected, such as a malformed prompt
	// or a content policy violation.
	ErrorUserInput ErrorCategory = "user_input"
)

// CategorizedError is an error that reports its category.
type CategorizedError interface {
	error
	Category() ErrorCategory
	StatusCode() int
}

// Error is a categorized backend error.
type Error struct {
	Msg   string
	Cat   ErrorCategory
	Code  int   // HTTP status code, 0 if not applicable
	Cause error // underlying error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int {
	return e.Code
}

// NewTransientError creates a transient error.
func NewTransientError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorTransient, Code: statusCode, Cause: cause}
}

// NewPermanentError creates a permanent error.
func NewPermanentError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorPermanent, Code: statusCode, Cause: cause}
}

// NewUserInputError creates an error indicating the request was rejected.
func NewUserInputError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: ErrorUserInput, Code: statusCode, Cause: cause}
}

// CategorizeStatusCode maps an HTTP status code to an error category.
func CategorizeStatusCode(code int) ErrorCategory {
	switch {
	case code == 429:
		return ErrorTransient
	case code >= 500 && code < 600:
		return ErrorTransient
	case code == 401 || code == 403:
		return ErrorPermanent
	case code == 400 || code == 404 || code == 422:
		return ErrorUserInput
	default:
		return ErrorPermanent
	}
}

// NewStatusError builds a categorized error from an HTTP status code.
func NewStatusError(msg string, statusCode int, cause error) *Error {
	return &Error{Msg: msg, Cat: CategorizeStatusCode(statusCode), Code: statusCode, Cause: cause}
}

// CategoryOf returns the category of err, or "" if it is not categorized.
func CategoryOf(err error) ErrorCategory {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.Category()
	}
	return ""
}

// IsTransient returns true if the error is categorized as transient.
func IsTransient(err error) bool {
	return CategoryOf(err) == ErrorTransient
}

// IsPermanent returns true if the error is categorized as permanent.
func IsPermanent(err error) bool {
	return CategoryOf(err) == ErrorPermanent
}

// IsUserInput returns true if the error is categorized as a user input error.
func IsUserInput(err error) bool {
	return CategoryOf(err) == ErrorUserInput
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var ce CategorizedError
	if errors.As(err, &ce) {
		return ce.StatusCode()
	}
	return 0
}

// ImageError represents an error during image processing.
type ImageError struct {
	Op     string // "decode" or "encode"
	Source string // "base64" or a file path
	Err    error
}

// Error returns a formatted error message describing the image processing failure.
func (e *ImageError) Error() string {
	return fmt.Sprintf("image %s error for %s: %v", e.Op, e.Source, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ImageError) Unwrap() error {
	return e.Err
}

// BlockedError indicates the backend refused the request by content filtering.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("request blocked: %s", e.Reason)
}

// ErrEmptyResponse is returned when a backend hands back no response at all.
var ErrEmptyResponse = errors.New("empty response")
