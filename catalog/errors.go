package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownApplication is returned for keys outside the supported set.
var ErrUnknownApplication = errors.New("unknown application")

// UnknownApplicationError reports which key was not recognized.
type UnknownApplicationError struct {
	Key string
}

func (e *UnknownApplicationError) Error() string {
	return fmt.Sprintf("unknown application: %q", e.Key)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, catalog.ErrUnknownApplication)
func (e *UnknownApplicationError) Is(target error) bool {
	return target == ErrUnknownApplication
}
