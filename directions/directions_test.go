package directions

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/mmcloughlin/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Coordinate_IsValid(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want bool
	}{
		{"origin", NewCoordinate(0, 0), true},
		{"bounds", NewCoordinate(-90, 180), true},
		{"latitude too low", NewCoordinate(-90.000001, 0), false},
		{"longitude too high", NewCoordinate(0, 180.5), false},
		{"sentinel invalid", NewCoordinate(-9999.99, -9999.0), false},
		{"nan", NewCoordinate(math.NaN(), 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsValid())
			if tt.want {
				assert.NoError(t, tt.c.Validate())
			} else {
				assert.ErrorIs(t, tt.c.Validate(), ErrInvalidCoordinate)
			}
		})
	}
}

func Test_Coordinate_String(t *testing.T) {
	assert.Equal(t, "10.000000,10.000000", NewCoordinate(10, 10).String())
	assert.Equal(t, "-33.868820,151.209296", NewCoordinate(-33.86882, 151.209296).String())
}

func Test_ParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Coordinate
		wantErr bool
	}{
		{"valid", "48.8566,2.3522", NewCoordinate(48.8566, 2.3522), false},
		{"spaces", " 48.8566 , 2.3522 ", NewCoordinate(48.8566, 2.3522), false},
		{"missing comma", "48.8566", Coordinate{}, true},
		{"not a number", "north,2", Coordinate{}, true},
		{"out of range", "91,0", Coordinate{}, true},
		{"infinite", "Inf,0", Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCoordinate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_Point_Usability(t *testing.T) {
	assert.False(t, Point{}.IsUsable())
	assert.False(t, Point{Name: "only a name"}.IsUsable())
	assert.True(t, AtAddress("Toulouse", "").IsUsable())

	p := AtCoordinate(1, 2, "Home")
	assert.True(t, p.HasCoordinate())
	assert.False(t, p.HasAddress())
	assert.Equal(t, "Home", p.Name)
}

func Test_Choose(t *testing.T) {
	from := AtCoordinate(10, 10, "")
	from.Address = "Appstud, 25 Rue Roquelaine, 31000 Toulouse"
	to := AtCoordinate(20, 20, "ToName")
	to.Address = "Aéroport Toulouse Blagnac, Toulouse"

	t.Run("coordinates preferred", func(t *testing.T) {
		rep, err := Choose(from, to)
		require.NoError(t, err)
		require.Equal(t, KindCoordinates, rep.Kind())

		coords := rep.(Coordinates)
		assert.Equal(t, NewCoordinate(10, 10), coords.From)
		assert.Equal(t, NewCoordinate(20, 20), coords.To)
		fromName, toName := rep.Names()
		assert.Empty(t, fromName)
		assert.Equal(t, "ToName", toName)
	})

	t.Run("address fallback", func(t *testing.T) {
		rep, err := Choose(AtAddress("A", "a"), to)
		require.NoError(t, err)
		require.Equal(t, KindAddress, rep.Kind())
		assert.Equal(t, Address{From: "A", To: to.Address, FromName: "a", ToName: "ToName"}, rep)
	})

	t.Run("mixed without common form", func(t *testing.T) {
		_, err := Choose(AtCoordinate(1, 1, ""), AtAddress("B", ""))
		assert.ErrorIs(t, err, ErrNoUsableDirections)
	})

	t.Run("empty points", func(t *testing.T) {
		_, err := Choose(Point{}, Point{})
		assert.True(t, errors.Is(err, ErrNoUsableDirections))
	})
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "coordinates", KindCoordinates.String())
	assert.Equal(t, "address", KindAddress.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func Test_ParseTransportMode(t *testing.T) {
	for _, m := range AllModes() {
		got, err := ParseTransportMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseTransportMode("  WALK ")
	require.NoError(t, err)
	assert.Equal(t, ModeWalk, got)

	_, err = ParseTransportMode("teleport")
	assert.Error(t, err)
	assert.False(t, TransportMode("").IsValid())
}

func Test_TransportMode_JSON(t *testing.T) {
	var decoded struct {
		Mode TransportMode `json:"mode"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"Bike"}`), &decoded))
	assert.Equal(t, ModeBike, decoded.Mode)

	data, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"bike"}`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`{"mode":"boat"}`), &decoded))
}

func Test_PointFromGeohash(t *testing.T) {
	p, err := PointFromGeohash("ezs42", "Spain")
	require.NoError(t, err)
	require.True(t, p.HasCoordinate())
	assert.InDelta(t, 42.605, p.Coordinate.Latitude, 0.01)
	assert.InDelta(t, -5.603, p.Coordinate.Longitude, 0.01)
	assert.Equal(t, "Spain", p.Name)

	// The cell spans 42.583..42.627 and -5.625..-5.581; the point sits in its middle.
	box := geohash.BoundingBox("ezs42")
	lat, lng := box.Center()
	assert.Equal(t, lat, p.Coordinate.Latitude)
	assert.Equal(t, lng, p.Coordinate.Longitude)

	upper, err := PointFromGeohash(" EZS42 ", "")
	require.NoError(t, err)
	assert.Equal(t, p.Coordinate, upper.Coordinate)

	_, err = PointFromGeohash("", "")
	assert.Error(t, err)
	_, err = PointFromGeohash("ezs42a", "")
	assert.Error(t, err, "'a' is not part of the geohash alphabet")
	_, err = PointFromGeohash("0123456789bcd", "")
	assert.Error(t, err)
}
