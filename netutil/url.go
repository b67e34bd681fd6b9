// Package netutil provides helpers for inspecting deep-link URIs.
package netutil

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseDeepLink parses rawURI and requires an absolute URI with a scheme.
func ParseDeepLink(rawURI string) (*url.URL, error) {
	parsed, err := url.Parse(rawURI)
	if err != nil {
		return nil, err
	}
	if parsed.Scheme == "" {
		return nil, fmt.Errorf("missing scheme in %q", Redact(rawURI))
	}
	return parsed, nil
}

// SchemeName returns the lowercased scheme of a URI or of a bare prefix such
// as "comgooglemaps://". It returns "" when there is no scheme.
func SchemeName(uriOrPrefix string) string {
	scheme, _, found := strings.Cut(uriOrPrefix, ":")
	if !found {
		return ""
	}
	return strings.ToLower(scheme)
}

// IsUniversalLink returns true if the URI uses the http or https scheme.
// Universal links are handled by the system and need no installed-app probe.
func IsUniversalLink(rawURI string) bool {
	switch SchemeName(rawURI) {
	case "http", "https":
		return true
	default:
		return false
	}
}

// Redact reduces a URI to its scheme, host and query parameter names for
// logging. Path segments, parameter values and the fragment are replaced,
// since templates embed place names in both the path and the query. A host
// that is not a plain DNS name, such as the "<lat>,<lon>,<name>" authority of
// legacy HERE links, is replaced as well.
func Redact(rawURI string) string {
	parsed, err := url.Parse(rawURI)
	if err != nil || parsed.Scheme == "" {
		return redactedMarker
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(parsed.Scheme))
	b.WriteString("://")
	if parsed.Host != "" {
		if isDNSName(parsed.Host) {
			b.WriteString(parsed.Host)
		} else {
			b.WriteString(redactedMarker)
		}
	}

	switch parsed.EscapedPath() {
	case "":
	case "/":
		b.WriteByte('/')
	default:
		b.WriteString("/" + redactedMarker)
	}

	if keys := QueryKeys(rawURI); len(keys) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(keys, "&"))
	}
	return b.String()
}

const redactedMarker = "..."

func isDNSName(host string) bool {
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '.', c == '-', c == ':':
		default:
			return false
		}
	}
	return true
}

// QueryKeys returns the query parameter names of a URI in order of appearance.
// Repeated names are listed once.
func QueryKeys(rawURI string) []string {
	parsed, err := url.Parse(rawURI)
	if err != nil || parsed.RawQuery == "" {
		return nil
	}

	seen := make(map[string]bool)
	var keys []string
	for _, pair := range strings.Split(parsed.RawQuery, "&") {
		key, _, _ := strings.Cut(pair, "=")
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}
