// Package schema declares the output-shape contracts the model is
// constrained to for each orchestration operation. The declarations marshal
// directly into the generateContent responseSchema wire format.
package schema

// Type is a schema value type in the generateContent wire format.
type Type string

const (
	TypeObject  Type = "OBJECT"
	TypeArray   Type = "ARRAY"
	TypeString  Type = "STRING"
	TypeNumber  Type = "NUMBER"
	TypeBoolean Type = "BOOLEAN"
)

// Schema is one node of an output-shape contract.
type Schema struct {
	Type       Type               `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

func obj(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

func arr(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func str() *Schema { return &Schema{Type: TypeString} }

func strEnum(values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}

func num() *Schema { return &Schema{Type: TypeNumber} }

func boolean() *Schema { return &Schema{Type: TypeBoolean} }
