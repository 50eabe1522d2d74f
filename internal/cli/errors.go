// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts and agents.
const (
	// Workspace errors
	ErrWorkspaceNotFound = "WORKSPACE_NOT_FOUND"
	ErrWorkspaceExists   = "WORKSPACE_EXISTS"
	ErrConfigInvalid     = "CONFIG_INVALID"

	// Entity errors
	ErrEntityNotFound = "ENTITY_NOT_FOUND"
	ErrEntityExists   = "ENTITY_EXISTS"
	ErrKindInvalid    = "KIND_INVALID"
	ErrDateInvalid    = "DATE_INVALID"

	// File errors
	ErrFileNotFound  = "FILE_NOT_FOUND"
	ErrFileReadError = "FILE_READ_ERROR"

	// Index errors
	ErrIndexError = "INDEX_ERROR"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"
	ErrModeInvalid     = "MODE_INVALID"
)

// Warning codes.
const (
	WarnOrphanedEntity = "ORPHANED_ENTITY"
)
