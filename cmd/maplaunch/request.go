package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
	"github.com/reglet-dev/reglet-maplaunch/dto"
	"github.com/reglet-dev/reglet-maplaunch/parser"
	"github.com/reglet-dev/reglet-maplaunch/schema"
)

// pointFlags describe one endpoint on the command line.
type pointFlags struct {
	coordinate string
	geohash    string
	address    string
	name       string
}

func (f *pointFlags) register(cmd *cobra.Command, prefix, label string) {
	cmd.Flags().StringVar(&f.coordinate, prefix, "", label+` coordinate as "lat,lon"`)
	cmd.Flags().StringVar(&f.geohash, prefix+"-geohash", "", label+" geohash")
	cmd.Flags().StringVar(&f.address, prefix+"-address", "", label+" address")
	cmd.Flags().StringVar(&f.name, prefix+"-name", "", label+" display name")
	cmd.MarkFlagsMutuallyExclusive(prefix, prefix+"-geohash")
}

func (f *pointFlags) toDTO() (dto.PointDTO, error) {
	p := dto.PointDTO{Geohash: f.geohash, Address: f.address, Name: f.name}
	if f.coordinate != "" {
		c, err := directions.ParseCoordinate(f.coordinate)
		if err != nil {
			return p, err
		}
		p.Latitude, p.Longitude = &c.Latitude, &c.Longitude
	}
	return p, nil
}

// requestFlags collect a launch request from flags or a request document.
type requestFlags struct {
	app     string
	mode    string
	request string
	from    pointFlags
	to      pointFlags
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.app, "app", "a", "", "application key ("+strings.Join(appKeys(), ", ")+")")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "transport mode (drive, ride, bike, walk)")
	cmd.Flags().StringVarP(&f.request, "request", "r", "", "read the request from a JSON, YAML or TOML file")
	f.from.register(cmd, "from", "origin")
	f.to.register(cmd, "to", "destination")
}

// load returns the validated request. Flags given alongside --request
// override the document's app and mode.
func (f *requestFlags) load() (*dto.LaunchRequestDTO, error) {
	var req *dto.LaunchRequestDTO
	if f.request != "" {
		var err error
		if req, err = readRequest(f.request); err != nil {
			return nil, err
		}
	} else {
		from, err := f.from.toDTO()
		if err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
		to, err := f.to.toDTO()
		if err != nil {
			return nil, fmt.Errorf("--to: %w", err)
		}
		req = &dto.LaunchRequestDTO{From: from, To: to}
	}

	if f.app != "" {
		req.App = f.app
	}
	if f.mode != "" {
		req.Mode = f.mode
	}
	return req, nil
}

// readRequest checks the document against its schema before decoding it.
func readRequest(path string) (*dto.LaunchRequestDTO, error) {
	doc, err := parser.ReadFile(path)
	if err != nil {
		return nil, err
	}

	registry, err := schema.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}
	generic, err := doc.Parser.Decode(doc.Data)
	if err != nil {
		return nil, err
	}
	result, err := registry.Validate(schema.LaunchRequestKind, generic)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%s does not match the request schema:\n  %s", path, strings.Join(result.Errors, "\n  "))
	}

	return doc.Parser.Parse(doc.Data)
}

// errNoApp is returned when no application was named and none can be picked.
var errNoApp = errors.New("no application given; use --app")

// launchInputs are the launcher arguments of one request.
type launchInputs struct {
	app      catalog.AppKey
	from, to directions.Point
	mode     directions.TransportMode
}

// toInputs validates and converts a request. With pickable set, a missing
// app is left empty for the caller to choose.
func toInputs(req *dto.LaunchRequestDTO, pickable bool) (launchInputs, error) {
	var in launchInputs

	validated := *req
	if validated.App == "" {
		if !pickable {
			return in, errNoApp
		}
		validated.App = string(catalog.Apple)
	}
	if err := validated.Validate(); err != nil {
		return in, err
	}

	if req.App != "" {
		app, err := req.ToAppKey()
		if err != nil {
			return in, err
		}
		in.app = app
	}

	var err error
	if in.mode, err = req.ToMode(); err != nil {
		return in, err
	}
	if in.from, in.to, err = req.ToPoints(); err != nil {
		return in, err
	}
	return in, nil
}

func appKeys() []string {
	keys := catalog.Keys()
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}
