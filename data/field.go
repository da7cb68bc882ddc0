package data

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var ErrNotAStruct = errors.New("class type is not a struct")

// Properties holds raw property values keyed by property name.
type Properties map[string]any

// Clone returns a shallow copy of p.
func (p Properties) Clone() Properties {
	out := make(Properties, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Field describes the property a value belongs to.
type Field struct {
	// Name is the property name as seen by the framework.
	Name string
	// GoName is the struct field name, empty for ad-hoc fields.
	GoName string
	// Type is the declared type; nil when unknown.
	Type reflect.Type
	// Nullable reports whether the declared type can hold nil.
	Nullable bool
	// Tag is the raw struct tag.
	Tag reflect.StructTag
}

// FieldOf builds a Field for an ad-hoc property of declared type T.
func FieldOf[T any](name string) Field {
	t := reflect.TypeFor[T]()

	return Field{Name: name, Type: t, Nullable: isNullable(t)}
}

// Class is the declared field list of a target struct type.
type Class struct {
	Name   string
	Type   reflect.Type
	Fields []Field
}

// ClassFor builds the Class of T.
func ClassFor[T any]() (*Class, error) {
	return ClassOf(reflect.TypeFor[T]())
}

// ClassOf builds the Class of a struct type or a pointer to one.
// Exported fields are listed in declaration order, embedded structs are
// flattened, and the json tag name is used when present. Fields tagged
// `json:"-"` are skipped.
func ClassOf(t reflect.Type) (*Class, error) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotAStruct, t)
	}

	class := &Class{Name: t.Name(), Type: t}
	collectFields(t, &class.Fields)

	return class, nil
}

func collectFields(t reflect.Type, out *[]Field) {
	for i := range t.NumField() {
		sf := t.Field(i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get("json") == "" {
			collectFields(sf.Type, out)
			continue
		}

		if !sf.IsExported() {
			continue
		}

		name, skip := jsonName(sf)
		if skip {
			continue
		}

		*out = append(*out, Field{
			Name:     name,
			GoName:   sf.Name,
			Type:     sf.Type,
			Nullable: isNullable(sf.Type),
			Tag:      sf.Tag,
		})
	}
}

func jsonName(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return sf.Name, false
	}

	if tag == "-" {
		return "", true
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return sf.Name, false
	}

	return name, false
}

func isNullable(t reflect.Type) bool {
	if t == nil {
		return true
	}

	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

// Field returns the declared field with the given property name.
func (c *Class) Field(name string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Names returns the property names in declaration order.
func (c *Class) Names() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}

	return names
}
