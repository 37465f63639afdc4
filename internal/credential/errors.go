package credential

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying file-backed construction failures. Callers
// match them with errors.Is.
var (
	// ErrRead marks a credential file that could not be opened or read.
	ErrRead = errors.New("credential file unreadable")
	// ErrParse marks a credential file that is not valid TOML.
	ErrParse = errors.New("credential file invalid")
)

// MissingFieldError reports a required key that is absent from the
// credential file or present with a non-string value. Field uses dotted
// notation for keys nested under a table (e.g. "ovh-eu.application_key").
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("credential file missing required field %q", e.Field)
}
