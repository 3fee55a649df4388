package buglink

import "github.com/gopatchy/buglink/pkg/errors"

// Error sentinels, re-exported from pkg/errors so callers only need this
// package. Match with errors.Is; every sentinel wraps Err.
var (
	Err = errors.Err

	// Registration and build-time errors
	ErrDuplicateTemplate   = errors.ErrDuplicateTemplate
	ErrEmptyOwnerRepo      = errors.ErrEmptyOwnerRepo
	ErrAlreadyInitialized  = errors.ErrAlreadyInitialized
	ErrInvalidTemplateFile = errors.ErrInvalidTemplateFile

	// Report-time errors
	ErrNotInitialized   = errors.ErrNotInitialized
	ErrUnknownTemplate  = errors.ErrUnknownTemplate
	ErrMissingParameter = errors.ErrMissingParameter

	// Format and configuration errors
	ErrUnknownFormat = errors.ErrUnknownFormat
	ErrUnknownMode   = errors.ErrUnknownMode
)
