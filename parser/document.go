package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxDocumentSize bounds request documents read by ReadDocument.
const DefaultMaxDocumentSize = 64 * 1024

// ErrDocumentTooLarge is returned when a document exceeds the size limit.
var ErrDocumentTooLarge = errors.New("document too large")

// ErrUnknownFormat is returned for a file extension without a parser.
var ErrUnknownFormat = errors.New("unknown document format")

// ForFormat returns the parser for a format name or file extension,
// e.g. "yaml", ".yml" or "toml".
func ForFormat(format string) (RequestParser, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		return NewJSONRequestParser(), nil
	case "yaml", "yml":
		return NewYamlRequestParser(), nil
	case "toml":
		return NewTOMLRequestParser(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// ForPath returns the parser matching the extension of path.
func ForPath(path string) (RequestParser, error) {
	return ForFormat(filepath.Ext(path))
}

// ReadDocument reads at most limit bytes from r.
// A non-positive limit selects DefaultMaxDocumentSize.
func ReadDocument(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultMaxDocumentSize
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrDocumentTooLarge, limit)
	}
	return data, nil
}

// ReadFile reads and parses the request document at path.
func ReadFile(path string) (*RequestDocument, error) {
	p, err := ForPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open request: %w", err)
	}
	defer f.Close()

	data, err := ReadDocument(f, 0)
	if err != nil {
		return nil, err
	}
	return &RequestDocument{Parser: p, Data: data}, nil
}

// RequestDocument is a raw document paired with its parser.
type RequestDocument struct {
	Parser RequestParser
	Data   []byte
}
