package directions

// Point is a travel endpoint.
// A usable point carries a coordinate, an address, or both. Name is an
// optional display label passed through to applications that show one.
type Point struct {
	Coordinate *Coordinate
	Address    string
	Name       string
}

// AtCoordinate creates a point located at the given position.
func AtCoordinate(latitude, longitude float64, name string) Point {
	c := NewCoordinate(latitude, longitude)
	return Point{Coordinate: &c, Name: name}
}

// AtAddress creates a point described by a free-text address.
func AtAddress(address, name string) Point {
	return Point{Address: address, Name: name}
}

// HasCoordinate reports whether the point carries a coordinate, valid or not.
func (p Point) HasCoordinate() bool {
	return p.Coordinate != nil
}

// HasAddress reports whether the point carries a non-empty address.
func (p Point) HasAddress() bool {
	return p.Address != ""
}

// IsUsable reports whether the point can take part in any representation.
func (p Point) IsUsable() bool {
	return p.HasCoordinate() || p.HasAddress()
}
