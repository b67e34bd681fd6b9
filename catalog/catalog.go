package catalog

import (
	"maps"

	"github.com/reglet-dev/reglet-maplaunch/directions"
)

// Catalog is the read-only registry of supported applications.
// It is built once and never mutated, so it is safe for concurrent use.
type Catalog struct {
	descriptors []Descriptor
	index       map[AppKey]int
}

// Option configures a Catalog at construction time.
type Option func(*catalogConfig)

type catalogConfig struct {
	displayNames map[AppKey]string
}

// WithDisplayNames overrides display names, typically with localized ones.
// Keys missing from names keep their built-in display name.
func WithDisplayNames(names map[AppKey]string) Option {
	return func(c *catalogConfig) {
		if c.displayNames == nil {
			c.displayNames = make(map[AppKey]string, len(names))
		}
		maps.Copy(c.displayNames, names)
	}
}

// New creates the catalog of all supported applications.
func New(opts ...Option) *Catalog {
	var cfg catalogConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	descriptors := builtinDescriptors()
	index := make(map[AppKey]int, len(descriptors))
	for i := range descriptors {
		if name := cfg.displayNames[descriptors[i].Key]; name != "" {
			descriptors[i].DisplayName = name
		}
		index[descriptors[i].Key] = i
	}

	return &Catalog{descriptors: descriptors, index: index}
}

var defaultCatalog = New()

// Default returns the shared catalog with built-in display names.
func Default() *Catalog {
	return defaultCatalog
}

// Describe returns the descriptor for key.
func (c *Catalog) Describe(key AppKey) (Descriptor, error) {
	i, ok := c.index[key]
	if !ok {
		return Descriptor{}, &UnknownApplicationError{Key: string(key)}
	}
	return c.descriptors[i], nil
}

// All returns every descriptor in menu order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// Summaries returns the menu entries for every application, in menu order.
func (c *Catalog) Summaries() []Summary {
	out := make([]Summary, 0, len(c.descriptors))
	for _, d := range c.descriptors {
		out = append(out, d.Summary())
	}
	return out
}

// TransportParameter returns the application-specific value for mode.
// Unknown applications and unrecognized modes both report false.
func (c *Catalog) TransportParameter(key AppKey, mode directions.TransportMode) (string, bool) {
	d, err := c.Describe(key)
	if err != nil {
		return "", false
	}
	return d.TransportParameter(mode)
}
