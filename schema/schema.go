// Package schema exposes the JSON Schema structure passed through to
// providers when structured output is requested. The client layer treats it
// as opaque; validation happens inside the provider.
package schema

type Schema struct {
	Type        string             `json:"type,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Description string             `json:"description,omitempty"`
	Enum        []any              `json:"enum,omitempty"`
	Format      string             `json:"format,omitempty"`
}

// Object builds an object schema from property definitions, marking every
// property required.
func Object(props map[string]*Schema) *Schema {
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	return &Schema{Type: "object", Properties: props, Required: required}
}

// String returns a string schema with an optional description.
func String(description string) *Schema {
	return &Schema{Type: "string", Description: description}
}
