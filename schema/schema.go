// Generates JSON Schemas for the Notion model types via reflection.

// Package schema produces JSON Schema documents for the notion model
// types, using github.com/invopop/jsonschema. The schemas describe the
// wire shape of each object kind and are what cmd/notion-lint emits in
// -schema mode.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/invopop/jsonschema"

	notion "github.com/notionkit/go-notion"
)

// kinds maps object kind names to their model types.
var kinds = map[string]reflect.Type{
	"block":    reflect.TypeOf((*notion.Block)(nil)).Elem(),
	"comment":  reflect.TypeOf((*notion.Comment)(nil)).Elem(),
	"database": reflect.TypeOf((*notion.Database)(nil)).Elem(),
	"error":    reflect.TypeOf((*notion.APIError)(nil)).Elem(),
	"page":     reflect.TypeOf((*notion.Page)(nil)).Elem(),
	"user":     reflect.TypeOf((*notion.User)(nil)).Elem(),
}

// Kinds returns the object kind names with a registered schema,
// sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newReflector returns a reflector configured for the model package.
func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		// Model structs are self-describing; no external $ref targets.
		DoNotReference: false,
		ExpandedStruct: false,
	}
}

// For returns the JSON Schema for a model type.
func For[T any]() *jsonschema.Schema {
	return newReflector().Reflect(new(T))
}

// ForKind returns the JSON Schema for a named object kind ("page",
// "database", "block", "user", "comment", "error").
func ForKind(kind string) (*jsonschema.Schema, error) {
	t, ok := kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown object kind %q (have %v)", kind, Kinds())
	}
	return newReflector().ReflectFromType(t), nil
}

// MarshalIndent renders a schema as indented JSON.
func MarshalIndent(s *jsonschema.Schema) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return data, nil
}
