package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
	"github.com/reglet-dev/reglet-maplaunch/dto"
)

func ptr(f float64) *float64 { return &f }

func TestLaunchRequestDTO_Validate(t *testing.T) {
	valid := dto.LaunchRequestDTO{
		App:  "google",
		Mode: "walk",
		From: dto.PointDTO{Latitude: ptr(43.6047), Longitude: ptr(1.4442)},
		To:   dto.PointDTO{Geohash: "spc00", Name: "Somewhere"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(r *dto.LaunchRequestDTO)
		problem string
	}{
		{"missing app", func(r *dto.LaunchRequestDTO) { r.App = "" }, "app is required"},
		{"unknown mode", func(r *dto.LaunchRequestDTO) { r.Mode = "fly" }, "mode must be one of: drive ride bike walk"},
		{"latitude out of range", func(r *dto.LaunchRequestDTO) { r.From.Latitude = ptr(91) }, "from.latitude must be between -90 and 90"},
		{"longitude out of range", func(r *dto.LaunchRequestDTO) { r.From.Longitude = ptr(-181) }, "from.longitude must be between -180 and 180"},
		{"latitude alone", func(r *dto.LaunchRequestDTO) { r.From.Longitude = nil }, "from.longitude is required when latitude is set"},
		{"geohash and coordinate", func(r *dto.LaunchRequestDTO) { r.From.Geohash = "ezs42" }, "from.geohash cannot be combined with latitude"},
		{"geohash too long", func(r *dto.LaunchRequestDTO) { r.To.Geohash = "ezs42ezs42ezs" }, "to.geohash must be at most 12 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			r.From.Latitude, r.From.Longitude = ptr(43.6047), ptr(1.4442)
			tt.mutate(&r)

			err := r.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, dto.ErrInvalidRequest)

			var ve *dto.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Problems, tt.problem)
		})
	}
}

func TestLaunchRequestDTO_Conversions(t *testing.T) {
	r := dto.LaunchRequestDTO{
		App:  "YandexMaps",
		From: dto.PointDTO{Latitude: ptr(10), Longitude: ptr(20), Name: "Start"},
		To:   dto.PointDTO{Geohash: "ezs42", Name: "End", Address: "León"},
	}

	app, err := r.ToAppKey()
	require.NoError(t, err)
	assert.Equal(t, catalog.YandexMaps, app)

	mode, err := r.ToMode()
	require.NoError(t, err)
	assert.Empty(t, mode)

	r.Mode = "Bike"
	mode, err = r.ToMode()
	require.NoError(t, err)
	assert.Equal(t, directions.ModeBike, mode)

	from, to, err := r.ToPoints()
	require.NoError(t, err)
	require.True(t, from.HasCoordinate())
	assert.Equal(t, directions.NewCoordinate(10, 20), *from.Coordinate)
	assert.Equal(t, "Start", from.Name)

	require.True(t, to.HasCoordinate())
	assert.InDelta(t, 42.605, to.Coordinate.Latitude, 0.01)
	assert.InDelta(t, -5.603, to.Coordinate.Longitude, 0.01)
	assert.Equal(t, "León", to.Address)
	assert.Equal(t, "End", to.Name)

	r.App = "bogus"
	_, err = r.ToAppKey()
	assert.ErrorIs(t, err, catalog.ErrUnknownApplication)

	r.To.Geohash = "ailo"
	_, _, err = r.ToPoints()
	assert.ErrorContains(t, err, "to:")
}

func TestPointDTO_AddressOnly(t *testing.T) {
	p, err := dto.PointDTO{Address: "Gare Matabiau, Toulouse"}.ToPoint()
	require.NoError(t, err)
	assert.False(t, p.HasCoordinate())
	assert.True(t, p.HasAddress())
}
