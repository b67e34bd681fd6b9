package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/reglet-dev/reglet-maplaunch/dto"
)

// TOMLRequestParser implements RequestParser for TOML.
type TOMLRequestParser struct{}

// NewTOMLRequestParser creates a new TOMLRequestParser.
func NewTOMLRequestParser() RequestParser {
	return &TOMLRequestParser{}
}

// Parse unmarshals TOML bytes into a LaunchRequestDTO.
// Unknown keys are rejected.
func (p *TOMLRequestParser) Parse(data []byte) (*dto.LaunchRequestDTO, error) {
	var req dto.LaunchRequestDTO
	md, err := toml.Decode(string(data), &req)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML request: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("failed to parse TOML request: unknown keys %s", strings.Join(keys, ", "))
	}
	return &req, nil
}

// Decode unmarshals TOML bytes into generic JSON values.
func (p *TOMLRequestParser) Decode(data []byte) (any, error) {
	var v map[string]any
	if _, err := toml.Decode(string(data), &v); err != nil {
		return nil, fmt.Errorf("failed to decode TOML request: %w", err)
	}
	return normalize(v)
}

// Format implements RequestParser.
func (p *TOMLRequestParser) Format() string {
	return "toml"
}
