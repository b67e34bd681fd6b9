package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/reglet-dev/reglet-maplaunch/dto"
)

// JSONRequestParser implements RequestParser for JSON.
type JSONRequestParser struct{}

// NewJSONRequestParser creates a new JSONRequestParser.
func NewJSONRequestParser() RequestParser {
	return &JSONRequestParser{}
}

// Parse unmarshals JSON bytes into a LaunchRequestDTO.
// Unknown fields are rejected.
func (p *JSONRequestParser) Parse(data []byte) (*dto.LaunchRequestDTO, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var req dto.LaunchRequestDTO
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to parse JSON request: %w", err)
	}
	return &req, nil
}

// Decode unmarshals JSON bytes into generic values.
func (p *JSONRequestParser) Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode JSON request: %w", err)
	}
	return v, nil
}

// Format implements RequestParser.
func (p *JSONRequestParser) Format() string {
	return "json"
}

// normalize converts decoder output from other formats into the value shapes
// encoding/json produces.
func normalize(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return (&JSONRequestParser{}).Decode(data)
}
