package lang

import (
	"encoding/json"
	"sort"
)

// Snapshot is a point-in-time copy of the names and values a [Context]
// holds. It marshals to JSON and YAML.
type Snapshot struct {
	Variables []Variable `json:"variables,omitempty" yaml:"variables,omitempty"`
	Accessors []string   `json:"accessors,omitempty" yaml:"accessors,omitempty"`
	Modules   []string   `json:"modules,omitempty"   yaml:"modules,omitempty"`
}

// Variable describes one live variable in a [Snapshot].
type Variable struct {
	Name  string `json:"name"  yaml:"name"`
	Kind  string `json:"kind"  yaml:"kind"`
	Value Value  `json:"value" yaml:"value"`
	Scope int    `json:"scope" yaml:"scope"`
}

// Snapshot returns the current variables, accessor names, and module names
// of c, each sorted by name.
func (c *Context) Snapshot() Snapshot {
	vars := make([]Variable, 0, len(c.variables))
	for name, v := range c.variables {
		vars = append(vars, Variable{
			Name:  name,
			Kind:  v.value.Kind().String(),
			Value: v.value,
			Scope: v.scope,
		})
	}

	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })

	return Snapshot{
		Variables: vars,
		Accessors: c.Accessors(),
		Modules:   c.Modules(),
	}
}

// ToMap converts the snapshot variables to a native Go map keyed by name.
func (s Snapshot) ToMap() map[string]any {
	result := make(map[string]any, len(s.Variables))

	for _, v := range s.Variables {
		result[v.Name] = v.Value.Native()
	}

	return result
}

// MarshalJSON implements json.Marshaler for Value using its native payload.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Native())
}

// MarshalYAML implements yaml.InterfaceMarshaler for Value.
func (v Value) MarshalYAML() (any, error) {
	return v.Native(), nil
}
