package maplaunch

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
	"github.com/reglet-dev/reglet-maplaunch/urlbuild"
)

// Sentinel errors for every resolution failure.
// A *ResolveError matches the sentinel of its Kind with errors.Is.
var (
	// ErrNoUsableDirections is returned when neither both coordinates nor both
	// addresses are present.
	ErrNoUsableDirections = directions.ErrNoUsableDirections

	// ErrUnknownApplication is returned for an application key outside the catalog.
	ErrUnknownApplication = catalog.ErrUnknownApplication

	// ErrUnsupportedRepresentation is returned when the application does not
	// accept the chosen directions representation.
	ErrUnsupportedRepresentation = urlbuild.ErrUnsupportedRepresentation

	// ErrApplicationUnavailable is returned when the prober reports the
	// application cannot be opened.
	ErrApplicationUnavailable = errors.New("application unavailable")

	// ErrMalformedURL is returned when the rendered link does not parse as a URI.
	ErrMalformedURL = urlbuild.ErrMalformedURL
)

// FailureKind discriminates resolution failures.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureNoUsableDirections
	FailureUnknownApplication
	FailureUnsupportedRepresentation
	FailureApplicationUnavailable
	FailureMalformedURL
)

var failureNames = map[FailureKind]string{
	FailureNone:                      "none",
	FailureNoUsableDirections:        "no_usable_directions",
	FailureUnknownApplication:        "unknown_application",
	FailureUnsupportedRepresentation: "unsupported_representation",
	FailureApplicationUnavailable:    "application_unavailable",
	FailureMalformedURL:              "malformed_url",
}

func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

func (k FailureKind) sentinel() error {
	switch k {
	case FailureNoUsableDirections:
		return ErrNoUsableDirections
	case FailureUnknownApplication:
		return ErrUnknownApplication
	case FailureUnsupportedRepresentation:
		return ErrUnsupportedRepresentation
	case FailureApplicationUnavailable:
		return ErrApplicationUnavailable
	case FailureMalformedURL:
		return ErrMalformedURL
	}
	return nil
}

// ResolveError reports why an application could not be resolved.
type ResolveError struct {
	App  catalog.AppKey
	Kind FailureKind
	Err  error
}

func (e *ResolveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("resolve %s: %s", e.App, e.Kind)
	}
	return fmt.Sprintf("resolve %s: %v", e.App, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, maplaunch.ErrApplicationUnavailable)
func (e *ResolveError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// FailureKindOf returns the failure discriminant carried by err.
// Errors not produced by a Launcher map to FailureNone.
func FailureKindOf(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	var re *ResolveError
	if errors.As(err, &re) {
		return re.Kind
	}
	switch {
	case errors.Is(err, ErrNoUsableDirections):
		return FailureNoUsableDirections
	case errors.Is(err, ErrUnknownApplication):
		return FailureUnknownApplication
	case errors.Is(err, ErrUnsupportedRepresentation):
		return FailureUnsupportedRepresentation
	case errors.Is(err, ErrApplicationUnavailable):
		return FailureApplicationUnavailable
	case errors.Is(err, ErrMalformedURL):
		return FailureMalformedURL
	}
	return FailureNone
}

func newResolveError(app catalog.AppKey, kind FailureKind, err error) *ResolveError {
	return &ResolveError{App: app, Kind: kind, Err: err}
}
