package catalog

import "github.com/reglet-dev/reglet-maplaunch/directions"

// builtinDescriptors is the fixed application table, in menu order.
func builtinDescriptors() []Descriptor {
	return []Descriptor{
		{
			Key:                          Apple,
			DisplayName:                  "Apple Maps",
			URISchemePrefix:              "",
			SupportsAddressDirections:    true,
			SupportsCoordinateDirections: true,
			transportModes: map[directions.TransportMode]string{
				directions.ModeDrive: "d",
				directions.ModeWalk:  "w",
				directions.ModeRide:  "r",
			},
		},
		{
			Key:                          Here,
			DisplayName:                  "HERE Maps",
			URISchemePrefix:              "here-route://",
			SupportsCoordinateDirections: true,
			transportModes: map[directions.TransportMode]string{
				directions.ModeDrive: "d",
				directions.ModeWalk:  "w",
				directions.ModeBike:  "b",
				directions.ModeRide:  "pt",
			},
		},
		{
			Key:                          Google,
			DisplayName:                  "Google Maps",
			URISchemePrefix:              "comgooglemaps://",
			SupportsAddressDirections:    true,
			SupportsCoordinateDirections: true,
			transportModes: map[directions.TransportMode]string{
				directions.ModeDrive: "driving",
				directions.ModeRide:  "transit",
				directions.ModeBike:  "bicycling",
				directions.ModeWalk:  "walking",
			},
		},
		{
			Key:                          YandexNavi,
			DisplayName:                  "Yandex Navigator",
			URISchemePrefix:              "yandexnavi://",
			SupportsCoordinateDirections: true,
		},
		{
			Key:                          YandexMaps,
			DisplayName:                  "Yandex Maps",
			URISchemePrefix:              "yandexmaps://",
			SupportsCoordinateDirections: true,
			transportModes: map[directions.TransportMode]string{
				directions.ModeDrive: "auto",
				directions.ModeRide:  "mt",
				directions.ModeWalk:  "pd",
			},
		},
		{
			Key:                          Citymapper,
			DisplayName:                  "Citymapper",
			URISchemePrefix:              "citymapper://",
			SupportsCoordinateDirections: true,
		},
		{
			Key:                          Navigon,
			DisplayName:                  "Navigon",
			URISchemePrefix:              "navigon://",
			SupportsCoordinateDirections: true,
		},
		{
			Key:                          Transit,
			DisplayName:                  "The Transit App",
			URISchemePrefix:              "transit://",
			SupportsAddressDirections:    true,
			SupportsCoordinateDirections: true,
		},
		{
			Key:                          Waze,
			DisplayName:                  "Waze",
			URISchemePrefix:              "waze://",
			SupportsCoordinateDirections: true,
		},
		{
			Key:                          Moovit,
			DisplayName:                  "Moovit",
			URISchemePrefix:              "moovit://",
			SupportsCoordinateDirections: true,
		},
	}
}
