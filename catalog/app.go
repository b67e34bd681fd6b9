// Package catalog holds the fixed registry of supported map applications and
// their capabilities.
package catalog

import (
	"strings"

	"github.com/reglet-dev/reglet-maplaunch/directions"
)

// AppKey identifies a supported map application.
type AppKey string

const (
	Apple      AppKey = "apple"
	Here       AppKey = "here"
	Google     AppKey = "google"
	YandexNavi AppKey = "yandexNavi"
	YandexMaps AppKey = "yandexMaps"
	Citymapper AppKey = "citymapper"
	Navigon    AppKey = "navigon"
	Transit    AppKey = "transit"
	Waze       AppKey = "waze"
	Moovit     AppKey = "moovit"
)

// Keys returns every supported key in menu order.
func Keys() []AppKey {
	return []AppKey{Apple, Here, Google, YandexNavi, YandexMaps, Citymapper, Navigon, Transit, Waze, Moovit}
}

// ParseAppKey matches a key case-insensitively.
func ParseAppKey(s string) (AppKey, error) {
	trimmed := strings.TrimSpace(s)
	for _, k := range Keys() {
		if strings.EqualFold(string(k), trimmed) {
			return k, nil
		}
	}
	return "", &UnknownApplicationError{Key: s}
}

func (k AppKey) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k AppKey) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AppKey) UnmarshalText(text []byte) error {
	parsed, err := ParseAppKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Descriptor describes one supported application.
// Descriptors are immutable; the transport table is only reachable through
// TransportParameter.
type Descriptor struct {
	Key                          AppKey
	DisplayName                  string
	URISchemePrefix              string
	SupportsAddressDirections    bool
	SupportsCoordinateDirections bool

	transportModes map[directions.TransportMode]string
}

// Supports reports whether the application accepts the given representation kind.
func (d Descriptor) Supports(kind directions.Kind) bool {
	switch kind {
	case directions.KindAddress:
		return d.SupportsAddressDirections
	case directions.KindCoordinates:
		return d.SupportsCoordinateDirections
	default:
		return false
	}
}

// TransportParameter returns the application's value for mode, if it has one.
func (d Descriptor) TransportParameter(mode directions.TransportMode) (string, bool) {
	v, ok := d.transportModes[mode]
	return v, ok
}

// TransportModes returns the modes the application recognizes, in declaration order.
func (d Descriptor) TransportModes() []directions.TransportMode {
	var modes []directions.TransportMode
	for _, m := range directions.AllModes() {
		if _, ok := d.transportModes[m]; ok {
			modes = append(modes, m)
		}
	}
	return modes
}

// Scheme returns the URI scheme name without "://", or "" for universal links.
func (d Descriptor) Scheme() string {
	return strings.TrimSuffix(d.URISchemePrefix, "://")
}

// AlwaysReachable reports whether the application opens through a universal
// http(s) link and therefore needs no reachability probe.
func (d Descriptor) AlwaysReachable() bool {
	return d.URISchemePrefix == ""
}

// Summary is the menu entry for an application.
type Summary struct {
	Key         AppKey `json:"key" yaml:"key"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Summary returns the menu entry for the descriptor.
func (d Descriptor) Summary() Summary {
	return Summary{Key: d.Key, DisplayName: d.DisplayName}
}
