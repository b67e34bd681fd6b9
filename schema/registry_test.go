package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/reglet-maplaunch/parser"
	"github.com/reglet-dev/reglet-maplaunch/schema"
)

func decode(t *testing.T, format, data string) any {
	t.Helper()
	p, err := parser.ForFormat(format)
	require.NoError(t, err)
	v, err := p.Decode([]byte(data))
	require.NoError(t, err)
	return v
}

func TestDefaultRegistry_LaunchRequestSchema(t *testing.T) {
	r, err := schema.NewDefaultRegistry()
	require.NoError(t, err)
	assert.Equal(t, []string{schema.LaunchRequestKind}, r.List())

	s, ok := r.GetSchema(schema.LaunchRequestKind)
	require.True(t, ok)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &doc))
	assert.ElementsMatch(t, []any{"app", "from", "to"}, doc["required"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	app, ok := props["app"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, app["enum"], "yandexNavi")
	assert.Equal(t, false, doc["additionalProperties"])
}

func TestRegistry_Validate(t *testing.T) {
	r, err := schema.NewDefaultRegistry()
	require.NoError(t, err)

	tests := []struct {
		name    string
		format  string
		data    string
		valid   bool
		problem string
	}{
		{
			name:   "coordinates",
			format: "json",
			data:   `{"app":"waze","from":{"latitude":1,"longitude":2},"to":{"latitude":3,"longitude":4,"name":"Office"}}`,
			valid:  true,
		},
		{
			name:   "addresses in yaml",
			format: "yaml",
			data:   "app: google\nmode: walk\nfrom:\n  address: Gare Matabiau\nto:\n  address: Capitole\n",
			valid:  true,
		},
		{
			name:   "geohash in toml",
			format: "toml",
			data:   "app = \"apple\"\n[from]\ngeohash = \"spc00\"\n[to]\ngeohash = \"ezs42\"\n",
			valid:  true,
		},
		{
			name:    "unknown application",
			format:  "json",
			data:    `{"app":"mapquest","from":{},"to":{}}`,
			problem: "/app",
		},
		{
			name:    "latitude out of range",
			format:  "json",
			data:    `{"app":"waze","from":{"latitude":91,"longitude":2},"to":{}}`,
			problem: "/from/latitude",
		},
		{
			name:    "missing destination",
			format:  "json",
			data:    `{"app":"waze","from":{}}`,
			problem: "to",
		},
		{
			name:    "unknown property",
			format:  "yaml",
			data:    "app: waze\nfrom: {}\nto: {}\nspeed: 3\n",
			problem: "speed",
		},
		{
			name:    "bad geohash",
			format:  "json",
			data:    `{"app":"waze","from":{"geohash":"ailo"},"to":{}}`,
			problem: "/from/geohash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.Validate(schema.LaunchRequestKind, decode(t, tt.format, tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid, res.Errors)
			if !tt.valid {
				require.NotEmpty(t, res.Errors)
				assert.Contains(t, strings.Join(res.Errors, "\n"), tt.problem)
			}
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	r := schema.NewRegistry()

	require.NoError(t, r.Register("names", `{"type":"object","additionalProperties":{"type":"string"}}`))
	require.NoError(t, r.Register("modes", map[string]any{"type": "string", "enum": []any{"drive", "walk"}}))
	require.NoError(t, r.Register("raw", []byte(`{"type":"number"}`)))

	err := r.Register("names", `{}`)
	assert.ErrorContains(t, err, "already registered")

	err = r.Register("broken", `{"type": 12}`)
	assert.ErrorContains(t, err, "invalid schema")
	_, ok := r.GetSchema("broken")
	assert.False(t, ok)

	err = r.Register("number", 42)
	assert.Error(t, err)

	assert.Equal(t, []string{"modes", "names", "raw"}, r.List())

	res, err := r.Validate("modes", "drive")
	require.NoError(t, err)
	assert.True(t, res.Valid)

	res, err = r.Validate("modes", "fly")
	require.NoError(t, err)
	assert.False(t, res.Valid)

	_, err = r.Validate("missing", "x")
	assert.ErrorIs(t, err, schema.ErrUnknownKind)
}

func TestRegistry_LenientMode(t *testing.T) {
	r := schema.NewRegistry(schema.WithStrictMode(false))
	type point struct {
		Name string `json:"name"`
	}
	require.NoError(t, r.Register("point", point{}))

	res, err := r.Validate("point", map[string]any{"name": "a", "extra": true})
	require.NoError(t, err)
	assert.True(t, res.Valid)
}
