package maplaunch

import (
	"net/url"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/netutil"
)

// Link is a resolved deep link.
// String returns the exact bytes the builder rendered; url.URL re-serialization
// would drop the empty authority of links such as "waze://?ll=...".
type Link struct {
	App catalog.AppKey
	raw string
	uri *url.URL
}

func newLink(app catalog.AppKey, raw string) (Link, error) {
	uri, err := netutil.ParseDeepLink(raw)
	if err != nil {
		return Link{}, err
	}
	return Link{App: app, raw: raw, uri: uri}, nil
}

// String returns the link as rendered.
func (l Link) String() string {
	return l.raw
}

// IsZero reports whether l holds no link.
func (l Link) IsZero() bool {
	return l.raw == ""
}

// URL returns a parsed copy of the link.
func (l Link) URL() *url.URL {
	if l.uri == nil {
		return nil
	}
	u := *l.uri
	return &u
}

// Scheme returns the lower-cased URI scheme.
func (l Link) Scheme() string {
	return netutil.SchemeName(l.raw)
}

// Redacted returns the link stripped of place names and addresses, for logging.
func (l Link) Redacted() string {
	return netutil.Redact(l.raw)
}

// MarshalText implements encoding.TextMarshaler.
func (l Link) MarshalText() ([]byte, error) {
	return []byte(l.raw), nil
}
