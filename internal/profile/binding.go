package profile

import (
	"fmt"

	"go.uber.org/multierr"

	"data-casts/data"
	"data-casts/internal/registry"
	"data-casts/rule"
)

// Binding holds the ready units of one profile.
type Binding struct {
	name   string
	class  *data.Class
	pipes  []data.Pipe
	fields map[string]*fieldBinding
	order  []string
}

type fieldBinding struct {
	casts        []data.Cast
	transformers []data.Transformer
	rules        rule.Set
}

// Build turns p into units resolved by r. When class is not nil, every
// profile field must be declared by it and units receive the declared field
// metadata. All problems are reported together.
func Build(p *Profile, r *registry.Registry, class *data.Class) (*Binding, error) {
	b := &Binding{
		name:   p.Name,
		class:  class,
		fields: make(map[string]*fieldBinding, len(p.Fields)),
	}

	var errs error

	for _, ref := range p.Pipes {
		pipe, err := r.PipeSpec(ref.Spec())
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("profile %s: %w", p.Name, err))
			continue
		}

		b.pipes = append(b.pipes, pipe)
	}

	for i := range p.Fields {
		f := &p.Fields[i]

		if _, dup := b.fields[f.Name]; dup {
			errs = multierr.Append(errs, fmt.Errorf("profile %s: field %q declared more than once", p.Name, f.Name))
			continue
		}

		if class != nil {
			if _, ok := class.Field(f.Name); !ok {
				errs = multierr.Append(errs, fmt.Errorf("profile %s: %w: %q on %s", p.Name, data.ErrUnknownField, f.Name, class.Name))
				continue
			}
		}

		fb, err := buildField(f, r)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("profile %s field %s: %w", p.Name, f.Name, err))
			continue
		}

		b.fields[f.Name] = fb
		b.order = append(b.order, f.Name)
	}

	if errs != nil {
		return nil, errs
	}

	return b, nil
}

func buildField(f *Field, r *registry.Registry) (*fieldBinding, error) {
	fb := &fieldBinding{}

	var errs error

	for _, ref := range f.Cast {
		c, err := r.CastSpec(ref.Spec())
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		fb.casts = append(fb.casts, c)
	}

	for _, ref := range f.Transform {
		t, err := r.TransformerSpec(ref.Spec())
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		fb.transformers = append(fb.transformers, t)
	}

	for _, text := range f.Rules {
		set, err := rule.ParseSet(text)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		fb.rules = append(fb.rules, set...)
	}

	return fb, errs
}

// Name returns the profile name.
func (b *Binding) Name() string { return b.name }

// Fields returns the bound field names in profile order.
func (b *Binding) Fields() []string { return b.order }

// Pipes returns the profile pipes in order.
func (b *Binding) Pipes() []data.Pipe { return b.pipes }

// Rules returns the rule set of a field, or nil.
func (b *Binding) Rules(name string) rule.Set {
	if fb, ok := b.fields[name]; ok {
		return fb.rules
	}

	return nil
}

// CastField runs the casts bound to the named field over value in order.
// Fields without casts return value unchanged.
func (b *Binding) CastField(name string, value any) (any, error) {
	fb, ok := b.fields[name]
	if !ok {
		return value, nil
	}

	field := b.field(name)

	for _, c := range fb.casts {
		var err error

		value, err = c.Cast(value, field)
		if err != nil {
			return nil, fmt.Errorf("cast %s of %s.%s: %w", data.NameOf(c), b.name, name, err)
		}
	}

	return value, nil
}

// TransformField runs the transformers bound to the named field over value
// in order. Fields without transformers return value unchanged.
func (b *Binding) TransformField(name string, value any) (any, error) {
	fb, ok := b.fields[name]
	if !ok {
		return value, nil
	}

	field := b.field(name)

	for _, t := range fb.transformers {
		var err error

		value, err = t.Transform(value, field)
		if err != nil {
			return nil, fmt.Errorf("transform %s of %s.%s: %w", data.NameOf(t), b.name, name, err)
		}
	}

	return value, nil
}

func (b *Binding) field(name string) data.Field {
	if b.class != nil {
		if f, ok := b.class.Field(name); ok {
			return f
		}
	}

	return data.Field{Name: name}
}
