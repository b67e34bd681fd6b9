package platform

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/reglet-dev/reglet-maplaunch/netutil"
)

// Middleware wraps an Opener to add cross-cutting behavior.
// Chain applies middleware in FIFO order (first listed wraps outermost,
// onion model).
//
// Example usage:
//
//	opener := platform.Chain(platform.NewDesktopOpener(),
//	    platform.PanicRecoveryMiddleware(),
//	    platform.LoggingMiddleware(logger),
//	)
type Middleware func(next Opener) Opener

// Chain wraps opener with mws.
func Chain(opener Opener, mws ...Middleware) Opener {
	for i := len(mws) - 1; i >= 0; i-- {
		opener = mws[i](opener)
	}
	return opener
}

// PanicRecoveryMiddleware converts a panicking opener into an error return.
func PanicRecoveryMiddleware() Middleware {
	return func(next Opener) Opener {
		return OpenerFunc(func(ctx context.Context, uri string) (accepted bool, err error) {
			defer func() {
				if r := recover(); r != nil {
					accepted = false
					err = fmt.Errorf("opener panicked: %v", r)
				}
			}()
			return next.Open(ctx, uri)
		})
	}
}

// LoggingMiddleware logs every open attempt. Links are logged in redacted
// form, see netutil.Redact.
func LoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next Opener) Opener {
		return OpenerFunc(func(ctx context.Context, uri string) (bool, error) {
			redacted := netutil.Redact(uri)
			logger.DebugContext(ctx, "opening link", "uri", redacted)
			accepted, err := next.Open(ctx, uri)
			if err != nil {
				logger.DebugContext(ctx, "open failed", "uri", redacted, "error", err)
			} else {
				logger.DebugContext(ctx, "open completed", "uri", redacted, "accepted", accepted)
			}
			return accepted, err
		})
	}
}

// DryRunMiddleware writes each link to w instead of opening it and reports
// it as accepted.
func DryRunMiddleware(w io.Writer) Middleware {
	return func(Opener) Opener {
		return OpenerFunc(func(_ context.Context, uri string) (bool, error) {
			if _, err := fmt.Fprintln(w, uri); err != nil {
				return false, err
			}
			return true, nil
		})
	}
}
