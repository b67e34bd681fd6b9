// Package dto holds the transport shape of a launch request as read from
// documents and command-line flags.
package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
)

// ErrInvalidRequest is returned when a request fails field validation.
var ErrInvalidRequest = errors.New("invalid launch request")

// ValidationError lists every field problem found in a request.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid launch request: " + strings.Join(e.Problems, "; ")
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, dto.ErrInvalidRequest)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// PointDTO is one endpoint of a request. A point is located by latitude and
// longitude, by geohash, or by a free-text address.
type PointDTO struct {
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty" toml:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude" jsonschema:"minimum=-90,maximum=90"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty" toml:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude" jsonschema:"minimum=-180,maximum=180"`
	Geohash   string   `json:"geohash,omitempty" yaml:"geohash,omitempty" toml:"geohash,omitempty" validate:"omitempty,max=12,excluded_with=Latitude" jsonschema:"maxLength=12,pattern=^[0-9b-hjkmnp-z]+$"`
	Address   string   `json:"address,omitempty" yaml:"address,omitempty" toml:"address,omitempty" validate:"omitempty,max=1024" jsonschema:"maxLength=1024"`
	Name      string   `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" validate:"omitempty,max=256" jsonschema:"maxLength=256"`
}

// LaunchRequestDTO asks for directions between two points in one application.
type LaunchRequestDTO struct {
	App  string   `json:"app" yaml:"app" toml:"app" validate:"required" jsonschema:"enum=apple,enum=here,enum=google,enum=yandexNavi,enum=yandexMaps,enum=citymapper,enum=navigon,enum=transit,enum=waze,enum=moovit"`
	Mode string   `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty" validate:"omitempty,oneof=drive ride bike walk" jsonschema:"enum=drive,enum=ride,enum=bike,enum=walk"`
	From PointDTO `json:"from" yaml:"from" toml:"from"`
	To   PointDTO `json:"to" yaml:"to" toml:"to"`
}

// Validate checks field constraints. It does not check that the two points
// share a representation; that is the launcher's job.
func (r *LaunchRequestDTO) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	problems := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		problems[i] = FormatValidationError(fe)
	}
	return &ValidationError{Problems: problems}
}

// FormatValidationError renders one field error for humans.
func FormatValidationError(err validator.FieldError) string {
	field := strings.TrimPrefix(err.Namespace(), "LaunchRequestDTO.")
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "required_with":
		return field + " is required when " + strings.ToLower(err.Param()) + " is set"
	case "excluded_with":
		return field + " cannot be combined with " + strings.ToLower(err.Param())
	case "max":
		return field + " must be at most " + err.Param() + " characters long"
	case "oneof":
		return field + " must be one of: " + err.Param()
	case "latitude":
		return field + " must be between -90 and 90"
	case "longitude":
		return field + " must be between -180 and 180"
	default:
		return field + " failed " + err.Tag() + " validation"
	}
}

// ToAppKey returns the requested application.
func (r *LaunchRequestDTO) ToAppKey() (catalog.AppKey, error) {
	return catalog.ParseAppKey(r.App)
}

// ToMode returns the requested transport mode, or "" when none was given.
func (r *LaunchRequestDTO) ToMode() (directions.TransportMode, error) {
	if r.Mode == "" {
		return "", nil
	}
	return directions.ParseTransportMode(r.Mode)
}

// ToPoints converts both endpoints.
func (r *LaunchRequestDTO) ToPoints() (from, to directions.Point, err error) {
	if from, err = r.From.ToPoint(); err != nil {
		return from, to, fmt.Errorf("from: %w", err)
	}
	if to, err = r.To.ToPoint(); err != nil {
		return from, to, fmt.Errorf("to: %w", err)
	}
	return from, to, nil
}

// ToPoint converts the endpoint. A geohash is decoded to the center of its cell.
func (p PointDTO) ToPoint() (directions.Point, error) {
	point := directions.Point{Address: p.Address, Name: p.Name}

	switch {
	case p.Latitude != nil && p.Longitude != nil:
		c := directions.NewCoordinate(*p.Latitude, *p.Longitude)
		point.Coordinate = &c
	case p.Latitude != nil || p.Longitude != nil:
		return directions.Point{}, fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidRequest)
	case p.Geohash != "":
		decoded, err := directions.PointFromGeohash(p.Geohash, p.Name)
		if err != nil {
			return directions.Point{}, err
		}
		point.Coordinate = decoded.Coordinate
	}
	return point, nil
}
