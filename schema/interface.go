package schema

// SchemaRegistry manages JSON schemas for request document kinds.
type SchemaRegistry interface {
	// Register adds a schema for a document kind (e.g. "launch-request").
	// model can be a struct (to generate schema) or a JSON schema string/map.
	Register(kind string, model any) error

	// GetSchema returns the JSON schema for a document kind.
	GetSchema(kind string) (string, bool)

	// List returns all registered kinds, sorted.
	List() []string
}

// DocumentValidator validates decoded documents against registered schemas.
type DocumentValidator interface {
	// Validate checks doc, as produced by encoding/json, against the schema of kind.
	Validate(kind string, doc any) (*ValidationResult, error)
}

// ValidationResult describes the outcome of schema validation.
type ValidationResult struct {
	Valid  bool
	Errors []string
}
