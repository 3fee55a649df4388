// Package errors defines the buglink error taxonomy.
package errors

import "fmt"

var (
	// Base error; every error in buglink inherits from this
	Err = fmt.Errorf("buglink error")

	// Registration and build-time errors
	ErrDuplicateTemplate   = fmt.Errorf("duplicate template name (%w)", Err)
	ErrEmptyOwnerRepo      = fmt.Errorf("empty owner or repo (%w)", Err)
	ErrAlreadyInitialized  = fmt.Errorf("already initialized (%w)", Err)
	ErrInvalidTemplateFile = fmt.Errorf("invalid template file (%w)", Err)

	// Report-time errors
	ErrNotInitialized   = fmt.Errorf("not initialized (%w)", Err)
	ErrUnknownTemplate  = fmt.Errorf("unknown template (%w)", Err)
	ErrMissingParameter = fmt.Errorf("missing parameter (%w)", Err)

	// Format and configuration errors
	ErrUnknownFormat = fmt.Errorf("unknown format (%w)", Err)
	ErrUnknownMode   = fmt.Errorf("unknown hyperlink mode (%w)", Err)
)
