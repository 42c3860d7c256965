package models

import "net/http"

// APIError carries a fixed, client-safe detail string together with the HTTP
// status it maps to. Underlying errors are logged, never sent to the client.
type APIError struct {
	StatusCode int    `json:"-"`
	Detail     string `json:"detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Detail
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Detail: detail}
}

// The error taxonomy. Authentication and authorization failures share one
// detail string so a caller cannot probe for the existence of a resource or
// permission.
var (
	ErrAuthenticationFailed  = NewAPIError(http.StatusUnauthorized, "Authentication failed.")
	ErrTokenValidationFailed = NewAPIError(http.StatusUnauthorized, "Token validation failed.")
	ErrUserAlreadyExists     = NewAPIError(http.StatusBadRequest, "Email or username already exists!")
	ErrBookNotFound          = NewAPIError(http.StatusNotFound, "Book not found.")
	ErrWebhookUnreachable    = NewAPIError(http.StatusServiceUnavailable, "Webhook service is unreachable or timedout.")
	ErrWebhookMalformed      = NewAPIError(http.StatusBadGateway, "Invalid response received from webhook service (malformed JSON)")
	ErrStorageFailed         = NewAPIError(http.StatusInternalServerError, "Database storage failed.")
	ErrDeleteFailed          = NewAPIError(http.StatusInternalServerError, "Delete item failed")
)

// FieldError describes a single invalid request field
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// ValidationErrorResponse is the 422 body for malformed request payloads
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
