package pipe

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"data-casts/data"
	"data-casts/primitive"
)

// CastPrimitives coerces raw property values to the primitive type each field
// declares: bools, integers, floats, strings, time.Time, time.Duration and
// named string or integer enum types. Pointer fields are coerced to their
// element type and re-wrapped. Nil values and absent properties are left
// alone, and so are values that cannot be coerced, unless the pipe is Strict.
type CastPrimitives struct {
	opts options
}

// NewCastPrimitives builds the pipe; by default every conversion category is
// allowed.
func NewCastPrimitives(opts ...Option) CastPrimitives {
	return CastPrimitives{opts: newOptions(opts)}
}

func (CastPrimitives) Name() string { return "cast_primitives" }

func (p CastPrimitives) Handle(props data.Properties, class *data.Class) (data.Properties, error) {
	fields, err := selectFields(class, p.opts.fields)
	if err != nil {
		return props, err
	}

	out := props.Clone()

	var errs error

	for _, f := range fields {
		raw, present := out[f.Name]
		if !present || raw == nil || f.Type == nil || reflect.TypeOf(raw) == f.Type {
			continue
		}

		dst, pointer, ok := primitiveTarget(f.Type)
		if !ok {
			continue
		}

		coerced, err := primitive.Coerce(raw, dst, p.opts.categories)
		if err != nil {
			p.opts.logger.Debug("property left uncoerced",
				zap.String("class", class.Name),
				zap.String("property", f.Name),
				zap.Stringer("from", primitive.FromValue(raw)),
				zap.String("type", f.Type.String()),
				zap.Error(err))

			if p.opts.strict {
				errs = multierr.Append(errs, fmt.Errorf("property %q: %w", f.Name, err))
			}

			continue
		}

		if pointer {
			ptr := reflect.New(dst)
			ptr.Elem().Set(reflect.ValueOf(coerced))
			coerced = ptr.Interface()
		}

		p.opts.logger.Debug("property coerced",
			zap.String("class", class.Name),
			zap.String("property", f.Name),
			zap.Stringer("kind", primitive.FromReflectType(dst)))

		out[f.Name] = coerced
	}

	return out, errs
}

// primitiveTarget returns the primitive type a field coerces to and whether
// the field wraps it in one pointer level.
func primitiveTarget(t reflect.Type) (reflect.Type, bool, bool) {
	pointer := false

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
		pointer = true
	}

	if primitive.FromReflectType(t) == 0 {
		return nil, false, false
	}

	return t, pointer, true
}
