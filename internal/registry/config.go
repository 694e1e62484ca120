package registry

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const catalogSchemaURL = "mem://catalog.schema.json"

// ToolConfig describes the MCP tool that serves a category: the tool name
// and the argument that carries the topic key.
type ToolConfig struct {
	Name     string `json:"name"`
	Argument string `json:"argument"`
}

// EntryConfig is one topic mapping inside a category.
// Kind is "exact" (topic key lookup) or "template" (URI template parameter).
// Docs is the ordered list of document refs composed for this topic;
// authoring order is preserved in the output.
type EntryConfig struct {
	Key     string   `json:"key"`
	Kind    string   `json:"kind"`
	Docs    []string `json:"docs"`
	Related []string `json:"related,omitempty"`
}

// CategoryConfig is one documentation category with its tool metadata and
// topic entries.
type CategoryConfig struct {
	Name    string        `json:"name"`
	Display string        `json:"display"`
	Tool    ToolConfig    `json:"tool"`
	Entries []EntryConfig `json:"entries"`
}

// StaticURIConfig maps a literal resource path (the part after "scheme://docs/")
// to a canonical (category, topic) pair. Static paths are checked before
// template shapes.
type StaticURIConfig struct {
	Path     string `json:"path"`
	Category string `json:"category"`
	Topic    string `json:"topic"`
}

// Config is the catalog file shape. It is built once at startup and never
// mutated afterward.
type Config struct {
	Version    string            `json:"version"`
	Scheme     string            `json:"scheme"`
	Categories []CategoryConfig  `json:"categories"`
	StaticURIs []StaticURIConfig `json:"static_uris,omitempty"`
}

// LoadConfig parses and validates a catalog document against its JSON schema.
// Schema violations are startup-time failures: a catalog that does not
// validate must never reach registry construction.
func LoadConfig(catalogJSON, schemaJSON []byte) (*Config, error) {
	var schemaDoc interface{}
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return nil, fmt.Errorf("invalid catalog schema: %w", err)
	}

	var catalogDoc interface{}
	if err := json.Unmarshal(catalogJSON, &catalogDoc); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(catalogSchemaURL, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to add catalog schema: %w", err)
	}

	schema, err := compiler.Compile(catalogSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	if err := schema.Validate(catalogDoc); err != nil {
		return nil, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(catalogJSON, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	return &cfg, nil
}
