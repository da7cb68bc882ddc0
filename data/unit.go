package data

// Cast converts a raw input value assigned to field.
type Cast interface {
	Cast(value any, field Field) (any, error)
}

// Transformer converts a typed value of field for outward serialization.
type Transformer interface {
	Transform(value any, field Field) (any, error)
}

// Pipe rewrites the raw properties of an object of class before validation.
type Pipe interface {
	Handle(props Properties, class *Class) (Properties, error)
}

// Named is implemented by units that report a stable name for logs and errors.
type Named interface {
	Name() string
}

// CastFunc adapts a plain function to the Cast interface.
type CastFunc func(value any, field Field) (any, error)

// Cast calls f(value, field).
func (f CastFunc) Cast(value any, field Field) (any, error) {
	return f(value, field)
}

// TransformerFunc adapts a plain function to the Transformer interface.
type TransformerFunc func(value any, field Field) (any, error)

// Transform calls f(value, field).
func (f TransformerFunc) Transform(value any, field Field) (any, error) {
	return f(value, field)
}

// NameOf returns the unit name when it implements Named, otherwise its Go type.
func NameOf(unit any) string {
	if n, ok := unit.(Named); ok {
		return n.Name()
	}

	return typeName(unit)
}
