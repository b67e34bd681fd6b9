package parser

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reglet-dev/reglet-maplaunch/dto"
)

// YamlRequestParser implements RequestParser for YAML.
type YamlRequestParser struct{}

// NewYamlRequestParser creates a new YamlRequestParser.
func NewYamlRequestParser() RequestParser {
	return &YamlRequestParser{}
}

// Parse unmarshals YAML bytes into a LaunchRequestDTO.
// Unknown fields are rejected.
func (p *YamlRequestParser) Parse(data []byte) (*dto.LaunchRequestDTO, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var req dto.LaunchRequestDTO
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML request: %w", err)
	}
	return &req, nil
}

// Decode unmarshals YAML bytes into generic JSON values.
func (p *YamlRequestParser) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode YAML request: %w", err)
	}
	return normalize(v)
}

// Format implements RequestParser.
func (p *YamlRequestParser) Format() string {
	return "yaml"
}
