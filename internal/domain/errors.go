package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without
// leaking infrastructure details. Grouped by kind: validation errors are
// user-correctable, conflicts are business-rule violations, transport
// errors are server faults, and configuration errors should page an
// operator rather than blame the client.
var (
	// Validation.
	ErrWeakPassword      = errors.New("password does not meet policy")
	ErrInvalidProvider   = errors.New("unsupported social provider")
	ErrIncompleteProfile = errors.New("provider profile missing id or email")
	ErrInvalidUserID     = errors.New("invalid user id")

	// Conflict.
	ErrEmailExists      = errors.New("email already registered")
	ErrProviderConflict = errors.New("account linked to a different provider")
	ErrSocialNoPassword = errors.New("social account has no password set")

	// Not found / mismatch.
	ErrUserNotFound     = errors.New("user not found")
	ErrCodeMismatch     = errors.New("invalid verification code")
	ErrEmailNotVerified = errors.New("email not verified")

	// Authentication.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoToken            = errors.New("no token provided")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")

	// Configuration: fatal for the request, never retried.
	ErrConfigMissing = errors.New("signing secret not configured")

	// Transport.
	ErrStoreUnavailable = errors.New("verification store unavailable")
	ErrDispatchFailed   = errors.New("failed to send verification code")
)
