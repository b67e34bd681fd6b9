// Package parser reads launch request documents in JSON, YAML or TOML.
package parser

import "github.com/reglet-dev/reglet-maplaunch/dto"

// RequestParser parses raw request bytes.
type RequestParser interface {
	// Parse unmarshals request bytes into a LaunchRequestDTO.
	Parse(data []byte) (*dto.LaunchRequestDTO, error)

	// Decode unmarshals request bytes into generic JSON values, suitable for
	// schema validation.
	Decode(data []byte) (any, error)

	// Format names the document format, e.g. "yaml".
	Format() string
}
