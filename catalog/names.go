package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// NamesFile represents the YAML structure of a display names file:
//
//	fr:
//	  apple: Plans
//	  transit: Transit
type NamesFile map[string]map[string]string

// ToDisplayNames returns the names for locale keyed by application.
// Locale lookup falls back from "fr-CA" to "fr". A locale that is absent
// yields an empty map.
func (f NamesFile) ToDisplayNames(locale string) (map[AppKey]string, error) {
	entries, ok := f.lookup(locale)
	if !ok {
		return map[AppKey]string{}, nil
	}

	names := make(map[AppKey]string, len(entries))
	for rawKey, name := range entries {
		key, err := ParseAppKey(rawKey)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("locale %q: empty display name for %s", locale, key)
		}
		names[key] = name
	}
	return names, nil
}

func (f NamesFile) lookup(locale string) (map[string]string, bool) {
	if entries, ok := f[locale]; ok {
		return entries, true
	}
	if base, _, found := strings.Cut(locale, "-"); found {
		entries, ok := f[base]
		return entries, ok
	}
	return nil, false
}

// LoadDisplayNames decodes a names file and returns the entries for locale.
func LoadDisplayNames(r io.Reader, locale string) (map[AppKey]string, error) {
	var file NamesFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return map[AppKey]string{}, nil
		}
		return nil, fmt.Errorf("decoding display names YAML: %w", err)
	}
	return file.ToDisplayNames(locale)
}

// LoadDisplayNamesFile reads display names for locale from path.
func LoadDisplayNamesFile(path, locale string) (map[AppKey]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open display names %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return LoadDisplayNames(f, locale)
}
