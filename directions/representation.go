package directions

import "errors"

// ErrNoUsableDirections is returned when two points share neither coordinates nor addresses.
var ErrNoUsableDirections = errors.New("no usable directions")

// Kind identifies the variant of a Representation.
type Kind int

const (
	KindCoordinates Kind = iota + 1
	KindAddress
)

func (k Kind) String() string {
	switch k {
	case KindCoordinates:
		return "coordinates"
	case KindAddress:
		return "address"
	default:
		return "unknown"
	}
}

// Representation is the resolved form of a directions request.
// It is either Coordinates or Address; the set of variants is closed.
type Representation interface {
	Kind() Kind
	// Names returns the origin and destination display names, possibly empty.
	Names() (from, to string)
	sealed()
}

// Coordinates is a location-mode request.
type Coordinates struct {
	From     Coordinate
	To       Coordinate
	FromName string
	ToName   string
}

func (Coordinates) Kind() Kind { return KindCoordinates }

func (r Coordinates) Names() (string, string) { return r.FromName, r.ToName }

func (Coordinates) sealed() {}

// Address is an address-mode request.
type Address struct {
	From     string
	To       string
	FromName string
	ToName   string
}

func (Address) Kind() Kind { return KindAddress }

func (r Address) Names() (string, string) { return r.FromName, r.ToName }

func (Address) sealed() {}

// Choose picks the representation for a pair of points.
// Coordinates win when both points carry one; otherwise both points must
// carry a non-empty address.
func Choose(from, to Point) (Representation, error) {
	if from.HasCoordinate() && to.HasCoordinate() {
		return Coordinates{
			From:     *from.Coordinate,
			To:       *to.Coordinate,
			FromName: from.Name,
			ToName:   to.Name,
		}, nil
	}

	if from.HasAddress() && to.HasAddress() {
		return Address{
			From:     from.Address,
			To:       to.Address,
			FromName: from.Name,
			ToName:   to.Name,
		}, nil
	}

	return nil, ErrNoUsableDirections
}
