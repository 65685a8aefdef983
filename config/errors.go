package config

import (
	"errors"
	"fmt"
)

// Sentinel conditions returned by the profile store. Callers distinguish them
// with errors.Is and decide how to render them.
var (
	// ErrProfileNotFound is returned when a referenced profile name is
	// absent from the profile collection.
	ErrProfileNotFound = errors.New("profile does not exist")

	// ErrProfileExists is returned when creating a profile whose name is
	// already taken.
	ErrProfileExists = errors.New("profile already exists")
)

// ParseError reports a malformed profile config document. Unlike the provider
// store, a parse failure here is a hard error: silently discarding all
// profiles would be unacceptable data loss.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
