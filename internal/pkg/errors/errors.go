package errors

import (
	goerrors "errors"
	"fmt"
)

// AppError - error carried from the geocode pipeline up to the HTTP facade
type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`

	cause error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches any AppError with the same code, so callers can test against the sentinels.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails returns a copy of e with details merged in. Sentinels stay untouched.
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = make(map[string]interface{}, len(e.Details)+len(details))
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	for k, v := range details {
		cp.Details[k] = v
	}
	return &cp
}

// WithDetail is the single key form of WithDetails.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	return e.WithDetails(map[string]interface{}{key: value})
}

// Wrap returns a copy of e with err recorded as its cause.
func (e *AppError) Wrap(err error) *AppError {
	cp := e.WithDetails(nil)
	cp.cause = err
	return cp
}

// FromError unwraps err down to the first AppError in its chain.
func FromError(err error) (*AppError, bool) {
	var appErr *AppError
	if goerrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
