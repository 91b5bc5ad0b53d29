package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeSessionExpired     ErrorType = "session_expired"
	ErrorTypeInvalidAPIKey      ErrorType = "invalid_api_key"
)

// AuthError represents authentication-specific errors with enhanced security context.
// The outward message is always uniform; the type distinguishes causes for logging only.
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged at error level.
	// Expected failures (wrong password, stale session) don't need that.
	ShouldLog bool
	// SecurityEvent indicates if this should be tracked as a security event
	SecurityEvent bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// It must not reveal whether the username or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid username or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewSessionExpiredError creates an error for absent or expired sessions.
// The message does not distinguish the two cases.
func NewSessionExpiredError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeSessionExpired,
			Message: "Not authenticated",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

// NewInvalidAPIKeyError creates an error for unknown or inactive API keys.
// Unknown and inactive are indistinguishable to the caller.
func NewInvalidAPIKeyError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidAPIKey,
			Message: "Invalid API key",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}
