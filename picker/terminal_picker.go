// Package picker lets a terminal user choose which navigation application
// to launch.
package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
)

// DefaultTitle is the prompt shown above the application list.
const DefaultTitle = "Choose your app for navigation"

var (
	// ErrNoApplications is returned when there is nothing to choose from.
	ErrNoApplications = errors.New("no navigation application available")

	// ErrCancelled is returned when the user aborts the prompt.
	ErrCancelled = errors.New("selection cancelled")
)

// selectFunc shows a single-choice prompt and returns the chosen value.
type selectFunc[T comparable] func(ctx context.Context, title string, options []huh.Option[T]) (T, error)

// TerminalPicker provides interactive terminal selection.
type TerminalPicker struct {
	title      string
	accessible bool
	input      io.Reader
	output     io.Writer

	selectApp  selectFunc[catalog.AppKey]
	selectMode selectFunc[directions.TransportMode]
}

// Option configures a TerminalPicker.
type Option func(*TerminalPicker)

// WithTitle sets the application prompt title.
func WithTitle(title string) Option {
	return func(p *TerminalPicker) { p.title = title }
}

// WithAccessible switches to huh's line-based accessible mode, which also
// works with piped input.
func WithAccessible(accessible bool) Option {
	return func(p *TerminalPicker) { p.accessible = accessible }
}

// WithIO sets the prompt input and output.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *TerminalPicker) {
		p.input = in
		p.output = out
	}
}

// NewTerminalPicker creates a new TerminalPicker.
func NewTerminalPicker(opts ...Option) *TerminalPicker {
	p := &TerminalPicker{
		title: DefaultTitle,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.selectApp = huhSelect[catalog.AppKey](p)
	p.selectMode = huhSelect[directions.TransportMode](p)
	return p
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPicker) IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PickApplication asks the user to choose one of apps, listed in the given
// order. A single candidate is returned without prompting.
func (p *TerminalPicker) PickApplication(ctx context.Context, apps []catalog.Summary) (catalog.AppKey, error) {
	switch len(apps) {
	case 0:
		return "", ErrNoApplications
	case 1:
		return apps[0].Key, nil
	}

	options := make([]huh.Option[catalog.AppKey], len(apps))
	for i, app := range apps {
		options[i] = huh.NewOption(app.DisplayName, app.Key)
	}

	key, err := p.selectApp(ctx, p.title, options)
	if err != nil {
		return "", wrapAbort(err)
	}
	return key, nil
}

// PickMode asks the user for a transport mode, preselecting current.
func (p *TerminalPicker) PickMode(ctx context.Context, current directions.TransportMode) (directions.TransportMode, error) {
	modes := directions.AllModes()
	options := make([]huh.Option[directions.TransportMode], len(modes))
	for i, m := range modes {
		options[i] = huh.NewOption(m.String(), m).Selected(m == current)
	}

	mode, err := p.selectMode(ctx, "How are you travelling?", options)
	if err != nil {
		return "", wrapAbort(err)
	}
	return mode, nil
}

func huhSelect[T comparable](p *TerminalPicker) selectFunc[T] {
	return func(ctx context.Context, title string, options []huh.Option[T]) (T, error) {
		var selection T
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[T]().
				Title(title).
				Options(options...).
				Value(&selection),
		)).WithAccessible(p.accessible)
		if p.input != nil {
			form = form.WithInput(p.input)
		}
		if p.output != nil {
			form = form.WithOutput(p.output)
		}

		if err := form.RunWithContext(ctx); err != nil {
			return selection, err
		}
		return selection, nil
	}
}

func wrapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	return err
}
