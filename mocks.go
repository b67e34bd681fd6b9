package maplaunch

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// MockProber implements platform.Prober for testing.
// Prefixes listed in Reachable report true; everything else reports false.
type MockProber struct {
	Reachable map[string]bool

	mu     sync.Mutex
	Probed []string
}

func (m *MockProber) CanOpen(ctx context.Context, uriPrefix string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Probed = append(m.Probed, uriPrefix)
	return m.Reachable[uriPrefix]
}

// ProbeCount returns the number of CanOpen calls so far.
func (m *MockProber) ProbeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Probed)
}

// MockOpener implements platform.Opener for testing.
type MockOpener struct {
	Accept bool
	Err    error

	mu     sync.Mutex
	Opened []string
}

func (m *MockOpener) Open(ctx context.Context, uri string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Opened = append(m.Opened, uri)
	if m.Err != nil {
		return false, m.Err
	}
	return m.Accept, nil
}

// NewTestLogger returns a logger that discards output.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
