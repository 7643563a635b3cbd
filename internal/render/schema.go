package render

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Schema returns the JSON Schema of Report, as printed by `regexviz schema`.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(&Report{})
	s.Title = "regexviz build report"
	return s
}

func (FollowTable) JSONSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("symbol", &jsonschema.Schema{Type: "string"})
	props.Set("followpos", intArray())
	return &jsonschema.Schema{
		Type:        "object",
		Description: "followpos by position, in position order",
		AdditionalProperties: &jsonschema.Schema{
			Type:       "object",
			Properties: props,
			Required:   []string{"symbol", "followpos"},
		},
	}
}

func (StateTable) JSONSchema() *jsonschema.Schema {
	props := orderedmap.New[string, *jsonschema.Schema]()
	props.Set("positions", intArray())
	props.Set("final", &jsonschema.Schema{Type: "boolean"})
	props.Set("transitions", &jsonschema.Schema{
		Type:                 "object",
		AdditionalProperties: &jsonschema.Schema{Type: "string"},
	})
	return &jsonschema.Schema{
		Type:        "object",
		Description: "DFA states by label, in construction order",
		AdditionalProperties: &jsonschema.Schema{
			Type:       "object",
			Properties: props,
			Required:   []string{"positions", "final", "transitions"},
		},
	}
}

func intArray() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: &jsonschema.Schema{Type: "integer"}}
}
