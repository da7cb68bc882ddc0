package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"data-casts/internal/common"
	"data-casts/internal/registry"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

// --- UnitList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for UnitList.
// Accepts:
//   - Single spec string: "trim" or "round:precision=2"
//   - Single map: {round: {precision: 2}}
//   - Array of either: [trim, {round: {precision: 2}}]
func (u *UnitList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		ref, err := unitFromScalar(node)
		if err != nil {
			return err
		}

		if ref.Name == "" {
			*u = UnitList{}
		} else {
			*u = UnitList{ref}
		}

		return nil

	case yaml.MappingNode:
		ref, err := unitFromMap(node)
		if err != nil {
			return err
		}

		*u = UnitList{ref}

		return nil

	case yaml.SequenceNode:
		refs := make(UnitList, 0, len(node.Content))

		for _, item := range node.Content {
			var (
				ref UnitRef
				err error
			)

			switch item.Kind {
			case yaml.ScalarNode:
				ref, err = unitFromScalar(item)
			case yaml.MappingNode:
				ref, err = unitFromMap(item)
			default:
				err = fmt.Errorf("line %d: expected string or map in array, got %v", item.Line, kindName(item.Kind))
			}

			if err != nil {
				return err
			}

			refs = append(refs, ref)
		}

		*u = refs

		return nil

	default:
		return fmt.Errorf("line %d: expected string, map, or array, got %v", node.Line, kindName(node.Kind))
	}
}

// unitFromScalar parses a spec string such as "round:precision=2".
func unitFromScalar(node *yaml.Node) (UnitRef, error) {
	var str string

	err := node.Decode(&str)
	if err != nil {
		return UnitRef{}, err
	}

	if str == "" {
		return UnitRef{}, nil
	}

	spec, err := registry.ParseSpec(str)
	if err != nil {
		return UnitRef{}, fmt.Errorf("line %d: %w", node.Line, err)
	}

	ref := UnitRef{Name: spec.Name}
	if len(spec.Params) > 0 {
		ref.Params = spec.Params
	}

	return ref, nil
}

// unitFromMap parses a mapping node like {round: {precision: 2}}.
func unitFromMap(node *yaml.Node) (UnitRef, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return UnitRef{}, fmt.Errorf("line %d: expected single key-value map like {round: {precision: 2}}", node.Line)
	}

	var name string

	err := node.Content[0].Decode(&name)
	if err != nil {
		return UnitRef{}, fmt.Errorf("invalid unit name: %w", err)
	}

	if name == "" {
		return UnitRef{}, fmt.Errorf("line %d: empty unit name", node.Line)
	}

	ref := UnitRef{Name: name}

	value := node.Content[1]
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		return ref, nil
	}

	var params map[string]string

	err = value.Decode(&params)
	if err != nil {
		return UnitRef{}, fmt.Errorf("line %d: parameters of %q must be a flat map: %w", value.Line, name, err)
	}

	if len(params) > 0 {
		ref.Params = params
	}

	return ref, nil
}

// MarshalYAML implements custom YAML marshaling for UnitList.
// Outputs:
//   - Single string if length is 1 and no parameters
//   - Single map if length is 1 with parameters
//   - Array otherwise
func (u UnitList) MarshalYAML() (any, error) {
	if common.IsEmpty(u) {
		return nil, nil
	}

	if common.IsSingle(u) {
		return u[0].yamlValue(), nil
	}

	result := make([]any, len(u))
	for i, ref := range u {
		result[i] = ref.yamlValue()
	}

	return result, nil
}

func (u UnitRef) yamlValue() any {
	if len(u.Params) == 0 {
		return u.Name
	}

	return map[string]map[string]string{u.Name: u.Params}
}

// Names returns the unit names in order.
func (u UnitList) Names() []string {
	names := make([]string, 0, len(u))
	for _, ref := range u {
		names = append(names, ref.Name)
	}

	return names
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return common.UnknownStr
	}
}
