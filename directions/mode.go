package directions

import (
	"fmt"
	"strings"
)

// TransportMode is the travel method a request is scoped to.
type TransportMode string

const (
	ModeDrive TransportMode = "drive"
	ModeRide  TransportMode = "ride"
	ModeBike  TransportMode = "bike"
	ModeWalk  TransportMode = "walk"
)

// DefaultMode is used when a request names no mode.
const DefaultMode = ModeDrive

// AllModes returns every transport mode in declaration order.
func AllModes() []TransportMode {
	return []TransportMode{ModeDrive, ModeRide, ModeBike, ModeWalk}
}

// IsValid checks if the transport mode is one of the known values.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeDrive, ModeRide, ModeBike, ModeWalk:
		return true
	default:
		return false
	}
}

func (m TransportMode) String() string {
	return string(m)
}

// ParseTransportMode parses a mode name, ignoring case and surrounding spaces.
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("unknown transport mode %q", s)
	}
	return m, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m TransportMode) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *TransportMode) UnmarshalText(text []byte) error {
	parsed, err := ParseTransportMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
