package urlbuild

import (
	"github.com/reglet-dev/reglet-maplaunch/catalog"
	"github.com/reglet-dev/reglet-maplaunch/directions"
)

const (
	appleMapsURL  = "http://maps.apple.com/"
	hereShareURL  = "https://share.here.com/r/"
	yandexMapsURL = "maps.yandex.ru/"

	navigonDefaultName = "Destination"
)

// addressLink returns "" for applications without an address template.
func (b *Builder) addressLink(d catalog.Descriptor, r directions.Address, mode directions.TransportMode) string {
	var q Query
	switch d.Key {
	case catalog.Apple:
		q.Set("saddr", EncodeAddress(r.From)).
			Set("daddr", EncodeAddress(r.To))
		return appleMapsURL + "?" + q.String()

	case catalog.Google:
		q.Set("saddr", EncodeAddress(r.From)).
			Set("daddr", EncodeAddress(r.To))
		setTransport(&q, d, mode, "directionsmode")
		return d.URISchemePrefix + "?" + q.String()

	case catalog.Transit:
		q.Set("from", EncodeAddress(r.From)).
			Set("to", EncodeAddress(r.To))
		return d.URISchemePrefix + "directions?" + q.String()
	}
	return ""
}

// coordinateLink returns "" for applications without a location template.
func (b *Builder) coordinateLink(d catalog.Descriptor, r directions.Coordinates, mode directions.TransportMode) string {
	var q Query
	switch d.Key {
	case catalog.Apple:
		q.Set("saddr", PinnedLocation(r.From, r.FromName)).
			Set("daddr", PinnedLocation(r.To, r.ToName)).
			Set("z", "14")
		setTransport(&q, d, mode, "dirflg")
		return appleMapsURL + "?" + q.String()

	case catalog.Here:
		return b.hereLink(d, r, mode)

	case catalog.Google:
		q.Set("saddr", PinnedLocation(r.From, r.FromName)).
			Set("daddr", PinnedLocation(r.To, r.ToName))
		setTransport(&q, d, mode, "directionsmode")
		return d.URISchemePrefix + "?" + q.String()

	case catalog.YandexMaps:
		q.Set("rtext", pair(r.From)+"~"+pair(r.To))
		setTransport(&q, d, mode, "rtt")
		return d.URISchemePrefix + yandexMapsURL + "?" + q.String()

	case catalog.YandexNavi:
		fromLat, fromLon := latLon(r.From)
		toLat, toLon := latLon(r.To)
		q.Set("lat_to", toLat).
			Set("lon_to", toLon).
			Set("lat_from", fromLat).
			Set("lon_from", fromLon)
		return d.URISchemePrefix + "build_route_on_map?" + q.String()

	case catalog.Citymapper:
		fromValid, toValid := r.From.IsValid(), r.To.IsValid()
		q.SetIf(fromValid, "startcoord", pair(r.From)).
			SetIf(fromValid && r.FromName != "", "startname", EncodeName(r.FromName)).
			SetIf(toValid, "endcoord", pair(r.To)).
			SetIf(toValid && r.ToName != "", "endname", EncodeName(r.ToName))
		return d.URISchemePrefix + "directions?" + q.String()

	case catalog.Navigon:
		name := r.ToName
		if name == "" {
			name = navigonDefaultName
		}
		toLat, toLon := latLon(r.To)
		return d.URISchemePrefix + "coordinate/" + EncodePathSegment(name) + "/" + toLon + "/" + toLat

	case catalog.Transit:
		q.Set("from", pair(r.From)).
			Set("to", pair(r.To))
		return d.URISchemePrefix + "directions?" + q.String()

	case catalog.Waze:
		q.Set("ll", pair(r.To)).
			Set("navigate", "yes")
		return d.URISchemePrefix + "?" + q.String()

	case catalog.Moovit:
		fromLat, fromLon := latLon(r.From)
		toLat, toLon := latLon(r.To)
		q.Set("dest_lat", toLat).
			Set("dest_lon", toLon).
			Set("dest_name", EncodeName(r.ToName)).
			Set("orig_lat", fromLat).
			Set("orig_lon", fromLon).
			Set("orig_name", EncodeName(r.FromName)).
			Set("auto_run", "true").
			Set("partner_id", EncodeName(b.host.Identifier()))
		return d.URISchemePrefix + "directions?" + q.String()
	}
	return ""
}

// hereLink renders "<lat>,<lon>,<name>/<lat>,<lon>,<name>" after either the
// share.here.com prefix or, on legacy platforms, the here-route:// scheme.
func (b *Builder) hereLink(d catalog.Descriptor, r directions.Coordinates, mode directions.TransportMode) string {
	fromLat, fromLon := latLon(r.From)
	toLat, toLon := latLon(r.To)
	route := fromLat + "," + fromLon + "," + EncodePathSegment(r.FromName) +
		"/" + toLat + "," + toLon + "," + EncodePathSegment(r.ToName)

	base := hereShareURL
	if b.legacyHere() {
		base = d.URISchemePrefix
	}

	var q Query
	setTransport(&q, d, mode, "m")
	if q.Len() == 0 {
		return base + route
	}
	return base + route + "?" + q.String()
}

// setTransport appends the application's value for mode under key, if any.
func setTransport(q *Query, d catalog.Descriptor, mode directions.TransportMode, key string) {
	if v, ok := d.TransportParameter(mode); ok {
		q.Set(key, v)
	}
}
