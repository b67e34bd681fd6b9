package urlbuild

import (
	"strconv"
	"strings"

	"github.com/reglet-dev/reglet-maplaunch/directions"
)

const upperhex = "0123456789ABCDEF"

// escapeSet decides which ASCII bytes are written verbatim.
type escapeSet func(c byte) bool

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// queryValueSafe is the RFC 3986 query set minus the delimiters the
// templates use themselves: '&', '=', '#' and '+'.
func queryValueSafe(c byte) bool {
	if isUnreserved(c) {
		return true
	}
	switch c {
	case '!', '$', '\'', '(', ')', '*', ',', ';', ':', '@', '/', '?':
		return true
	}
	return false
}

// pathSegmentSafe also escapes the separators of path-embedded templates
// (',' and '/') and anything that would change URI structure when the
// segment ends up in the authority.
func pathSegmentSafe(c byte) bool {
	if isUnreserved(c) {
		return true
	}
	switch c {
	case '!', '$', '\'', '(', ')', '*', ';', '&', '=', '+':
		return true
	}
	return false
}

func escape(s string, safe escapeSet, spaceAsPlus bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' && spaceAsPlus:
			b.WriteByte('+')
		case c < 0x80 && safe(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}

// EncodeName percent-encodes a display name for use as a query value.
// Spaces become %20.
func EncodeName(name string) string {
	return escape(name, queryValueSafe, false)
}

// EncodeAddress renders a free-text address for use as a query value.
// Spaces become '+'; a literal '+' is escaped so it survives decoding.
func EncodeAddress(address string) string {
	return escape(address, queryValueSafe, true)
}

// EncodePathSegment percent-encodes a name embedded in a URI path.
func EncodePathSegment(name string) string {
	return escape(name, pathSegmentSafe, false)
}

// FormatDegrees renders a latitude or longitude with six decimal digits.
func FormatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// latLon renders both components, or two empty strings for an invalid coordinate.
func latLon(c directions.Coordinate) (string, string) {
	if !c.IsValid() {
		return "", ""
	}
	return FormatDegrees(c.Latitude), FormatDegrees(c.Longitude)
}

// pair renders "lat,lon", or "" for an invalid coordinate.
func pair(c directions.Coordinate) string {
	if !c.IsValid() {
		return ""
	}
	return c.String()
}

// PinnedLocation renders "lat,lon+(name)" as used by Apple and Google Maps.
// The parenthesized label is omitted for an empty name and the whole value
// is empty for an invalid coordinate.
func PinnedLocation(c directions.Coordinate, name string) string {
	if !c.IsValid() {
		return ""
	}
	if name == "" {
		return c.String()
	}
	return c.String() + "+(" + EncodeName(name) + ")"
}
