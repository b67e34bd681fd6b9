// Package urlbuild turns a resolved directions representation into the deep
// link grammar of a specific map application.
package urlbuild

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
	"github.com/reglet-dev/reglet-maplaunch/netutil"
	"github.com/reglet-dev/reglet-maplaunch/platform"
)

// Sentinel errors for build failures.
var (
	// ErrUnsupportedRepresentation is returned when an application does not
	// accept the representation kind in use.
	ErrUnsupportedRepresentation = errors.New("unsupported directions representation")

	// ErrMalformedURL is returned when the assembled string is not a valid URI.
	ErrMalformedURL = errors.New("malformed URL")
)

// legacyHereConstraint selects the here-route:// grammar used before HERE
// published share.here.com links.
var legacyHereConstraint = mustConstraint("< 9.0")

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// Builder renders deep links. It holds no mutable state and is safe for
// concurrent use.
type Builder struct {
	host            platform.HostInfo
	platformVersion *semver.Version
}

// Option configures a Builder.
type Option func(*Builder)

// WithHost sets the host application identity used by templates that credit
// the caller (Moovit's partner_id).
func WithHost(h platform.HostInfo) Option {
	return func(b *Builder) {
		b.host = h
	}
}

// WithPlatformVersion sets the host OS version. Versions below 9.0 switch
// HERE to its legacy here-route:// grammar.
func WithPlatformVersion(v *semver.Version) Option {
	return func(b *Builder) {
		b.platformVersion = v
	}
}

// New creates a Builder.
func New(opts ...Option) *Builder {
	b := &Builder{
		host: platform.StaticHost(""),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build renders the deep link for app d.
// It fails with ErrUnsupportedRepresentation when d does not accept the
// representation kind, and with ErrMalformedURL when the result does not
// parse as a URI.
func (b *Builder) Build(d catalog.Descriptor, rep directions.Representation, mode directions.TransportMode) (string, error) {
	if rep == nil || !d.Supports(rep.Kind()) {
		return "", fmt.Errorf("%w: %s does not accept %s directions", ErrUnsupportedRepresentation, d.Key, kindOf(rep))
	}

	var raw string
	switch r := rep.(type) {
	case directions.Coordinates:
		raw = b.coordinateLink(d, r, mode)
	case directions.Address:
		raw = b.addressLink(d, r, mode)
	}
	if raw == "" {
		return "", fmt.Errorf("%w: %s has no %s template", ErrUnsupportedRepresentation, d.Key, kindOf(rep))
	}

	if _, err := netutil.ParseDeepLink(raw); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedURL, d.Key, err)
	}
	return raw, nil
}

func (b *Builder) legacyHere() bool {
	return b.platformVersion != nil && legacyHereConstraint.Check(b.platformVersion)
}

func kindOf(rep directions.Representation) directions.Kind {
	if rep == nil {
		return 0
	}
	return rep.Kind()
}
