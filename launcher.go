// Package maplaunch resolves a pair of directions points into a deep link for
// a chosen navigation application and hands it to the host to open.
package maplaunch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
	"github.com/reglet-dev/reglet-maplaunch/platform"
	"github.com/reglet-dev/reglet-maplaunch/urlbuild"
)

// FailureHandler is called when a resolution fails.
// It allows custom logging or auditing.
type FailureHandler func(ctx context.Context, app catalog.AppKey, err *ResolveError)

// Launcher resolves and launches directions requests.
// It holds no mutable state; concurrent use is safe as long as the injected
// Prober and Opener are.
type Launcher struct {
	catalog        *catalog.Catalog
	builder        *urlbuild.Builder
	prober         platform.Prober
	opener         platform.Opener
	logger         *slog.Logger
	failureHandler FailureHandler
	defaultMode    directions.TransportMode
	newAttemptID   func() string
}

// LauncherOption configures a Launcher.
type LauncherOption func(*Launcher)

// WithCatalog sets the application catalog. Defaults to catalog.Default().
func WithCatalog(c *catalog.Catalog) LauncherOption {
	return func(l *Launcher) { l.catalog = c }
}

// WithBuilder sets the URL builder. Defaults to urlbuild.New().
func WithBuilder(b *urlbuild.Builder) LauncherOption {
	return func(l *Launcher) { l.builder = b }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LauncherOption {
	return func(l *Launcher) { l.logger = logger }
}

// WithFailureHandler sets the handler invoked on every failed resolution.
func WithFailureHandler(h FailureHandler) LauncherOption {
	return func(l *Launcher) { l.failureHandler = h }
}

// WithDefaultMode sets the transport mode used when a request names none.
func WithDefaultMode(mode directions.TransportMode) LauncherOption {
	return func(l *Launcher) { l.defaultMode = mode }
}

// NewLauncher creates a launcher.
// The prober answers reachability queries and the opener launches links;
// both are required.
func NewLauncher(prober platform.Prober, opener platform.Opener, opts ...LauncherOption) *Launcher {
	l := &Launcher{
		catalog:      catalog.Default(),
		builder:      urlbuild.New(),
		prober:       prober,
		opener:       opener,
		logger:       slog.Default(),
		defaultMode:  directions.DefaultMode,
		newAttemptID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LaunchResult describes one launch attempt.
type LaunchResult struct {
	Link Link
	// Accepted reports whether the opener took the link. It says nothing
	// about navigation actually starting.
	Accepted  bool
	AttemptID string
}

// Resolve builds the deep link for app.
// Location mode is used when both points carry a coordinate, address mode when
// both carry an address. Failures are *ResolveError values matching one of the
// package sentinels.
func (l *Launcher) Resolve(ctx context.Context, app catalog.AppKey, from, to directions.Point, mode directions.TransportMode) (Link, error) {
	d, rep, rerr := l.check(ctx, app, from, to)
	if rerr != nil {
		return Link{}, l.fail(ctx, rerr)
	}

	if mode == "" {
		mode = l.defaultMode
	}

	raw, err := l.builder.Build(d, rep, mode)
	if err != nil {
		kind := FailureKindOf(err)
		if kind == FailureNone {
			kind = FailureMalformedURL
		}
		return Link{}, l.fail(ctx, newResolveError(app, kind, err))
	}

	link, err := newLink(app, raw)
	if err != nil {
		return Link{}, l.fail(ctx, newResolveError(app, FailureMalformedURL,
			fmt.Errorf("%w: %v", ErrMalformedURL, err)))
	}

	l.logger.DebugContext(ctx, "directions resolved",
		"app", app,
		"mode", mode,
		"representation", rep.Kind(),
		"uri", link.Redacted())
	return link, nil
}

// CanResolve reports whether Resolve would get as far as building a link:
// the points yield a representation, the application accepts it and the
// application is reachable. No link is built.
func (l *Launcher) CanResolve(ctx context.Context, app catalog.AppKey, from, to directions.Point) bool {
	_, _, err := l.check(ctx, app, from, to)
	return err == nil
}

// Launch resolves the link and hands it to the opener.
// The attempt ID is set even when resolution fails.
func (l *Launcher) Launch(ctx context.Context, app catalog.AppKey, from, to directions.Point, mode directions.TransportMode) (LaunchResult, error) {
	result := LaunchResult{AttemptID: l.newAttemptID()}

	link, err := l.Resolve(ctx, app, from, to, mode)
	if err != nil {
		return result, err
	}
	result.Link = link

	accepted, err := l.opener.Open(ctx, link.String())
	result.Accepted = accepted && err == nil
	if err != nil {
		l.logger.WarnContext(ctx, "failed to open link",
			"app", app,
			"attempt_id", result.AttemptID,
			"uri", link.Redacted(),
			"error", err)
		return result, fmt.Errorf("open %s: %w", app, err)
	}

	l.logger.InfoContext(ctx, "link handed to opener",
		"app", app,
		"attempt_id", result.AttemptID,
		"accepted", result.Accepted)
	return result, nil
}

// Applications lists every catalog application in menu order.
func (l *Launcher) Applications() []catalog.Summary {
	return l.catalog.Summaries()
}

// Available lists the reachable applications in menu order.
func (l *Launcher) Available(ctx context.Context) []catalog.Summary {
	var out []catalog.Summary
	for _, d := range l.catalog.All() {
		if l.reachable(ctx, d) {
			out = append(out, d.Summary())
		}
	}
	return out
}

// AvailableFor lists the applications that can resolve directions between
// from and to, in menu order.
func (l *Launcher) AvailableFor(ctx context.Context, from, to directions.Point) []catalog.Summary {
	var out []catalog.Summary
	for _, d := range l.catalog.All() {
		if l.CanResolve(ctx, d.Key, from, to) {
			out = append(out, d.Summary())
		}
	}
	return out
}

// check runs every validation that precedes link construction.
func (l *Launcher) check(ctx context.Context, app catalog.AppKey, from, to directions.Point) (catalog.Descriptor, directions.Representation, *ResolveError) {
	rep, err := directions.Choose(from, to)
	if err != nil {
		return catalog.Descriptor{}, nil, newResolveError(app, FailureNoUsableDirections, err)
	}

	d, err := l.catalog.Describe(app)
	if err != nil {
		return catalog.Descriptor{}, nil, newResolveError(app, FailureUnknownApplication, err)
	}

	if !d.Supports(rep.Kind()) {
		return d, nil, newResolveError(app, FailureUnsupportedRepresentation,
			fmt.Errorf("%w: %s does not accept %s directions", ErrUnsupportedRepresentation, app, rep.Kind()))
	}

	// An invalid origin renders as an empty fragment, which the applications
	// read as the current location. Without a destination there is no route.
	if c, ok := rep.(directions.Coordinates); ok && !c.To.IsValid() {
		return d, nil, newResolveError(app, FailureUnsupportedRepresentation,
			fmt.Errorf("%w: destination: %w", ErrUnsupportedRepresentation, c.To.Validate()))
	}

	if !l.reachable(ctx, d) {
		return d, nil, newResolveError(app, FailureApplicationUnavailable,
			fmt.Errorf("%w: %s (%s)", ErrApplicationUnavailable, d.DisplayName, d.URISchemePrefix))
	}

	return d, rep, nil
}

func (l *Launcher) reachable(ctx context.Context, d catalog.Descriptor) bool {
	if d.AlwaysReachable() {
		return true
	}
	return l.prober.CanOpen(ctx, d.URISchemePrefix)
}

func (l *Launcher) fail(ctx context.Context, err *ResolveError) error {
	l.logger.InfoContext(ctx, "directions not resolved",
		"app", err.App,
		"failure", err.Kind,
		"error", err.Err)
	if l.failureHandler != nil {
		l.failureHandler(ctx, err.App, err)
	}
	return err
}
