package platform

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skratchdot/open-golang/open"

	"github.com/reglet-dev/reglet-maplaunch/netutil"
)

// DesktopOpener opens URIs with the desktop's default handler
// (open, xdg-open or start, depending on the OS).
type DesktopOpener struct {
	application string
	logger      *slog.Logger
	start       func(uri string) error
	startWith   func(uri, application string) error
}

// DesktopOpenerOption configures a DesktopOpener.
type DesktopOpenerOption func(*DesktopOpener)

// WithApplication forces a specific handler application, e.g. "Maps" on macOS.
func WithApplication(name string) DesktopOpenerOption {
	return func(o *DesktopOpener) {
		o.application = name
	}
}

// WithOpenerLogger sets the logger.
func WithOpenerLogger(l *slog.Logger) DesktopOpenerOption {
	return func(o *DesktopOpener) {
		o.logger = l
	}
}

// NewDesktopOpener creates an opener backed by the OS handler registry.
func NewDesktopOpener(opts ...DesktopOpenerOption) *DesktopOpener {
	o := &DesktopOpener{
		logger:    slog.Default(),
		start:     open.Start,
		startWith: open.StartWith,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Open implements Opener.
func (o *DesktopOpener) Open(ctx context.Context, uri string) (bool, error) {
	var err error
	if o.application != "" {
		err = o.startWith(uri, o.application)
	} else {
		err = o.start(uri)
	}
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", netutil.Redact(uri), err)
	}

	o.logger.DebugContext(ctx, "uri handed to desktop", "uri", netutil.Redact(uri), "application", o.application)
	return true, nil
}
