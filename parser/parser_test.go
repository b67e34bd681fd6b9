package parser_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/reglet-maplaunch/parser"
)

const (
	jsonRequest = `{
  "app": "citymapper",
  "mode": "ride",
  "from": {"latitude": 10.0, "longitude": 10.0},
  "to": {"latitude": 20.0, "longitude": 20.0, "name": "Airport"}
}`

	yamlRequest = `app: citymapper
mode: ride
from:
  latitude: 10.0
  longitude: 10.0
to:
  latitude: 20.0
  longitude: 20.0
  name: Airport
`

	tomlRequest = `app = "citymapper"
mode = "ride"

[from]
latitude = 10.0
longitude = 10.0

[to]
latitude = 20.0
longitude = 20.0
name = "Airport"
`
)

func TestParsers_Parse(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{"json", jsonRequest},
		{"yaml", yamlRequest},
		{"toml", tomlRequest},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			p, err := parser.ForFormat(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.format, p.Format())

			req, err := p.Parse([]byte(tt.data))
			require.NoError(t, err)
			require.NoError(t, req.Validate())

			assert.Equal(t, "citymapper", req.App)
			assert.Equal(t, "ride", req.Mode)
			require.NotNil(t, req.From.Latitude)
			assert.Equal(t, 10.0, *req.From.Latitude)
			assert.Equal(t, 20.0, *req.To.Longitude)
			assert.Equal(t, "Airport", req.To.Name)
			assert.Empty(t, req.From.Name)
		})
	}
}

func TestParsers_Decode_ProducesJSONValues(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{"json", jsonRequest},
		{"yml", yamlRequest},
		{"toml", tomlRequest},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			p, err := parser.ForFormat(tt.format)
			require.NoError(t, err)

			v, err := p.Decode([]byte(tt.data))
			require.NoError(t, err)

			doc, ok := v.(map[string]any)
			require.True(t, ok, "%T", v)
			assert.Equal(t, "citymapper", doc["app"])

			to, ok := doc["to"].(map[string]any)
			require.True(t, ok)
			lat, ok := to["latitude"].(json.Number)
			require.True(t, ok, "%T", to["latitude"])
			f, err := lat.Float64()
			require.NoError(t, err)
			assert.Equal(t, 20.0, f)
		})
	}
}

func TestParsers_RejectUnknownFields(t *testing.T) {
	tests := []struct {
		format string
		data   string
	}{
		{"json", `{"app": "waze", "speed": 3}`},
		{"yaml", "app: waze\nspeed: 3\n"},
		{"toml", "app = \"waze\"\nspeed = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			p, err := parser.ForFormat(tt.format)
			require.NoError(t, err)
			_, err = p.Parse([]byte(tt.data))
			assert.ErrorContains(t, err, "speed")
		})
	}
}

func TestParsers_InvalidSyntax(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		p, err := parser.ForFormat(format)
		require.NoError(t, err)

		_, err = p.Parse([]byte("{{{ not a document"))
		assert.Error(t, err, format)
		_, err = p.Decode([]byte("{{{ not a document"))
		assert.Error(t, err, format)
	}
}

func TestForPath(t *testing.T) {
	for path, want := range map[string]string{
		"request.json": "json",
		"request.yaml": "yaml",
		"request.YML":  "yaml",
		"request.toml": "toml",
	} {
		p, err := parser.ForPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, p.Format(), path)
	}

	_, err := parser.ForPath("request.xml")
	assert.ErrorIs(t, err, parser.ErrUnknownFormat)
	_, err = parser.ForPath("request")
	assert.ErrorIs(t, err, parser.ErrUnknownFormat)
}

func TestReadDocument(t *testing.T) {
	data, err := parser.ReadDocument(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))

	_, err = parser.ReadDocument(strings.NewReader("123456"), 5)
	assert.ErrorIs(t, err, parser.ErrDocumentTooLarge)

	big := strings.Repeat("x", parser.DefaultMaxDocumentSize+1)
	_, err = parser.ReadDocument(strings.NewReader(big), 0)
	assert.ErrorIs(t, err, parser.ErrDocumentTooLarge)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "request.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlRequest), 0o600))

	doc, err := parser.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "toml", doc.Parser.Format())

	req, err := doc.Parser.Parse(doc.Data)
	require.NoError(t, err)
	assert.Equal(t, "citymapper", req.App)

	_, err = parser.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
