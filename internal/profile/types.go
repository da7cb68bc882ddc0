package profile

import (
	"maps"

	"data-casts/internal/registry"
)

// File is the root of a profile document.
type File struct {
	Version  string    `yaml:"version"`
	Profiles []Profile `yaml:"profiles"`
}

// Profile binds units to the fields of one class.
type Profile struct {
	Name   string   `yaml:"name"`
	Pipes  UnitList `yaml:"pipes,omitempty"`
	Fields []Field  `yaml:"fields,omitempty"`
}

// Field lists the units applied to one property.
type Field struct {
	Name      string        `yaml:"name"`
	Cast      UnitList      `yaml:"cast,omitempty"`
	Transform UnitList      `yaml:"transform,omitempty"`
	Rules     StringOrArray `yaml:"rules,omitempty"`
}

// UnitRef names a unit and its parameters.
type UnitRef struct {
	Name   string
	Params map[string]string
}

// UnitList accepts a single unit reference or a list of them.
type UnitList []UnitRef

// StringOrArray accepts a single string or a list of strings.
type StringOrArray []string

// Spec converts the reference into a registry spec.
func (u UnitRef) Spec() registry.Spec {
	return registry.Spec{Name: u.Name, Params: registry.Params(maps.Clone(u.Params))}
}

// String renders the reference in spec string form.
func (u UnitRef) String() string {
	return u.Spec().String()
}

// Profile returns the profile called name, or nil.
func (f *File) Profile(name string) *Profile {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i]
		}
	}

	return nil
}

// Names returns the profile names in file order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		names = append(names, p.Name)
	}

	return names
}
