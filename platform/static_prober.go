package platform

import (
	"context"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/reglet-dev/reglet-maplaunch/netutil"
)

// StaticProber answers reachability from a configured list of scheme patterns.
// Desktop hosts cannot ask the OS whether a custom scheme has a handler, so the
// installed applications are declared instead, e.g. "comgooglemaps" or "yandex*".
// Universal http(s) links are always reachable.
type StaticProber struct {
	patterns []string
}

// NewStaticProber creates a StaticProber matching scheme names against patterns.
// Patterns use doublestar syntax; "*" marks every application as installed.
func NewStaticProber(patterns ...string) (*StaticProber, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid installed-app pattern %q", p)
		}
	}
	return &StaticProber{patterns: append([]string(nil), patterns...)}, nil
}

// CanOpen implements Prober.
func (p *StaticProber) CanOpen(_ context.Context, uriPrefix string) bool {
	if netutil.IsUniversalLink(uriPrefix) {
		return true
	}

	scheme := netutil.SchemeName(uriPrefix)
	if scheme == "" {
		return false
	}

	for _, pattern := range p.patterns {
		// Patterns are validated in NewStaticProber.
		if ok, _ := doublestar.Match(pattern, scheme); ok {
			return true
		}
	}
	return false
}

// Patterns returns the configured patterns.
func (p *StaticProber) Patterns() []string {
	return append([]string(nil), p.patterns...)
}
