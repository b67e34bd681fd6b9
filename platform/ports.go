// Package platform defines the host capabilities the launcher depends on and
// provides adapters for desktop hosts.
package platform

import "context"

// Prober reports whether the host can open URIs with a given scheme prefix,
// e.g. "comgooglemaps://". It stands in for a platform "can open URL" query.
type Prober interface {
	CanOpen(ctx context.Context, uriPrefix string) bool
}

// Opener hands a URI to the operating system.
// The returned bool reports acceptance, not completion of navigation.
type Opener interface {
	Open(ctx context.Context, uri string) (bool, error)
}

// HostInfo identifies the application embedding the launcher.
type HostInfo interface {
	Identifier() string
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, uriPrefix string) bool

// CanOpen implements Prober.
func (f ProberFunc) CanOpen(ctx context.Context, uriPrefix string) bool {
	return f(ctx, uriPrefix)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, uri string) (bool, error)

// Open implements Opener.
func (f OpenerFunc) Open(ctx context.Context, uri string) (bool, error) {
	return f(ctx, uri)
}

// StaticHost is a HostInfo with a fixed identifier, e.g. the bundle name.
type StaticHost string

// Identifier implements HostInfo.
func (h StaticHost) Identifier() string {
	return string(h)
}
