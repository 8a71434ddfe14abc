package semver

import (
	"errors"
	"fmt"
)

// ErrInvalidVersion matches every *InvalidVersionError via errors.Is.
var ErrInvalidVersion = errors.New("invalid semantic version")

// InvalidVersionError is returned whenever an input string fails the version grammar.
type InvalidVersionError struct {
	Input  string
	Reason string
}

func (e *InvalidVersionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid semantic version %q", e.Input)
	}
	return fmt.Sprintf("invalid semantic version %q: %s", e.Input, e.Reason)
}

// Is reports whether target is ErrInvalidVersion.
func (e *InvalidVersionError) Is(target error) bool {
	return target == ErrInvalidVersion
}

func invalid(input, reason string) *InvalidVersionError {
	return &InvalidVersionError{Input: input, Reason: reason}
}
