// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Auth-related errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrSessionExpired     = errors.New("session expired")
	ErrPermissionDenied   = errors.New("permission denied")

	// Catalog-related errors
	ErrModuleNotFound = errors.New("training module not found")
	ErrPolicyNotFound = errors.New("policy not found")

	// Editor-related errors
	ErrMissingField = errors.New("missing field")
	ErrEditorClosed = errors.New("editor is closed")

	// Theme-related errors
	ErrUnknownTheme = errors.New("unknown theme")
)
