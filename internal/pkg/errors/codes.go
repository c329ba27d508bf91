package errors

import "net/http"

const (
	CodeMissingCredential = "MISSING_CREDENTIAL"
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeTransportFailure  = "TRANSPORT_FAILURE"
	CodeRemoteAPIError    = "REMOTE_API_ERROR"
	CodeInternalServer    = "INTERNAL_SERVER_ERROR"
)

var (
	ErrMissingCredential = New(
		CodeMissingCredential,
		"Google Maps API key is required",
		http.StatusUnauthorized,
	)

	ErrInvalidArgument = New(
		CodeInvalidArgument,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrTransportFailure = New(
		CodeTransportFailure,
		"Geocoding request failed",
		http.StatusBadGateway,
	)

	ErrRemoteAPI = New(
		CodeRemoteAPIError,
		"Geocoding API returned a non-OK status",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// MissingCredential - no API key was supplied and none could be resolved
func MissingCredential() *AppError {
	return ErrMissingCredential.WithDetail("param", "key")
}

// InvalidArgument names the offending parameter and the format it should have.
func InvalidArgument(param, expected string) *AppError {
	e := ErrInvalidArgument.WithDetails(map[string]interface{}{
		"param":    param,
		"expected": expected,
	})
	e.Message = "invalid " + param + ": expected " + expected
	return e
}

// TransportFailure wraps a network, status or decoding failure of the upstream call.
func TransportFailure(message string, cause error) *AppError {
	e := ErrTransportFailure.Wrap(cause)
	e.Message = message
	return e
}

// RemoteAPIError reports a response that parsed but carries a non-OK status.
func RemoteAPIError(status, message string) *AppError {
	e := ErrRemoteAPI.WithDetail("status", status)
	if message != "" {
		e.Message = message
	}
	return e
}
