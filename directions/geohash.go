package directions

import (
	"fmt"
	"strings"

	"github.com/mmcloughlin/geohash"
)

// PointFromGeohash creates a point at the center of a geohash cell.
func PointFromGeohash(hash, name string) (Point, error) {
	hash = strings.ToLower(strings.TrimSpace(hash))
	if hash == "" {
		return Point{}, fmt.Errorf("invalid geohash: empty")
	}
	if err := geohash.Validate(hash); err != nil {
		return Point{}, fmt.Errorf("invalid geohash %q: %w", hash, err)
	}

	lat, lng := geohash.DecodeCenter(hash)
	return AtCoordinate(lat, lng, name), nil
}
