package atomsbase

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedDimension = errors.New("unsupported dimension")
	ErrMissingIdentifier    = errors.New("atomic_number or atomic_symbol is required")
	ErrMissingPosition      = errors.New("position is required")
	ErrDimensionMismatch    = errors.New("dimension mismatch")
	ErrEmptySystem          = errors.New("cannot infer dimension from an empty atom collection")
	ErrUnknownKey           = errors.New("unknown key")
	ErrReservedKey          = errors.New("reserved key")
)

// ValidationError collects every issue found while validating a system or
// any other input. errors.Is matches against any collected issue.
type ValidationError struct {
	// Subject names what was validated in messages. Empty means "system".
	Subject string
	Issues  []error
}

func (e *ValidationError) subject() string {
	if e.Subject == "" {
		return "system"
	}
	return e.Subject
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "invalid " + e.subject() + ": unknown validation error"
	}
	if len(e.Issues) == 1 {
		return e.Issues[0].Error()
	}
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.Error()
	}
	return e.subject() + " validation errors: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Issues
}

func (e *ValidationError) Add(issue error) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) HasIssues() bool {
	return len(e.Issues) > 0
}

// Err returns e when it holds issues and nil otherwise.
func (e *ValidationError) Err() error {
	if e.HasIssues() {
		return e
	}
	return nil
}
