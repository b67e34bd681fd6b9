// Package schema publishes JSON schemas for request documents and validates
// decoded documents against them.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	compiler "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reglet-dev/reglet-maplaunch/dto"
)

// LaunchRequestKind is the kind under which the launch request schema is registered.
const LaunchRequestKind = "launch-request"

// ErrUnknownKind is returned when validating against an unregistered kind.
var ErrUnknownKind = errors.New("schema kind not registered")

// Registry implements SchemaRegistry and DocumentValidator using in-memory storage.
type Registry struct {
	schemas    map[string]string
	compiled   map[string]*compiler.Schema
	mu         sync.RWMutex
	strictMode bool
	reflector  *jsonschema.Reflector
}

// RegistryOption configures the Registry.
type RegistryOption func(*Registry)

// WithStrictMode rejects properties not declared by reflected structs.
// Enabled by default.
func WithStrictMode(strict bool) RegistryOption {
	return func(r *Registry) {
		r.strictMode = strict
	}
}

// NewRegistry creates an empty schema registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		schemas:    make(map[string]string),
		compiled:   make(map[string]*compiler.Schema),
		reflector:  new(jsonschema.Reflector),
		strictMode: true,
	}

	r.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(r)
	}
	r.reflector.AllowAdditionalProperties = !r.strictMode

	return r
}

// NewDefaultRegistry creates a registry holding the launch request schema.
func NewDefaultRegistry(opts ...RegistryOption) (*Registry, error) {
	r := NewRegistry(opts...)
	if err := r.Register(LaunchRequestKind, &dto.LaunchRequestDTO{}); err != nil {
		return nil, err
	}
	return r, nil
}

// Register adds a schema for a document kind.
// model can be a Go struct (to generate schema) or a raw JSON schema string,
// byte slice or map. The schema must compile.
func (r *Registry) Register(kind string, model any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[kind]; exists {
		return fmt.Errorf("schema kind already registered: %s", kind)
	}

	var schemaStr string

	switch v := model.(type) {
	case string:
		schemaStr = v
	case []byte:
		schemaStr = string(v)
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal schema map: %w", err)
		}
		schemaStr = string(b)
	default:
		t := reflect.TypeOf(model)
		if t == nil || (t.Kind() != reflect.Struct && !(t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Struct)) {
			return fmt.Errorf("cannot generate schema for %T", model)
		}

		s := r.reflector.Reflect(model)
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal generated schema: %w", err)
		}
		schemaStr = string(b)
	}

	compiled, err := compile(kind, schemaStr)
	if err != nil {
		return fmt.Errorf("invalid schema for %s: %w", kind, err)
	}

	r.schemas[kind] = schemaStr
	r.compiled[kind] = compiled
	return nil
}

// GetSchema retrieves the JSON Schema for a document kind.
func (r *Registry) GetSchema(kind string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[kind]
	return s, ok
}

// List returns all registered kinds, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks doc against the schema of kind.
// Schema violations are reported in the result; the error is reserved for
// unknown kinds and validator failures.
func (r *Registry) Validate(kind string, doc any) (*ValidationResult, error) {
	r.mu.RLock()
	s, ok := r.compiled[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	err := s.Validate(doc)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var ve *compiler.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("failed to validate %s: %w", kind, err)
	}

	result := &ValidationResult{}
	for _, e := range ve.BasicOutput().Errors {
		if e.Error == "" || strings.HasPrefix(e.Error, "doesn't validate with") {
			continue
		}
		loc := e.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		result.Errors = append(result.Errors, loc+": "+e.Error)
	}
	if len(result.Errors) == 0 {
		result.Errors = []string{ve.Error()}
	}
	return result, nil
}

func compile(kind, schemaStr string) (*compiler.Schema, error) {
	c := compiler.NewCompiler()
	url := kind + ".json"
	if err := c.AddResource(url, strings.NewReader(schemaStr)); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
