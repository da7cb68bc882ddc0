package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"data-casts/data"
	"data-casts/internal/match"
)

var ErrUnknownUnit = errors.New("unknown unit")

// Kind tells casts, transformers and pipes apart.
type Kind int

const (
	KindCast Kind = iota + 1
	KindTransformer
	KindPipe
)

func (k Kind) String() string {
	switch k {
	case KindCast:
		return "cast"
	case KindTransformer:
		return "transformer"
	case KindPipe:
		return "pipe"
	default:
		return "unit"
	}
}

// UnknownError reports a unit name that matched nothing.
type UnknownError struct {
	Kind        Kind
	Name        string
	Suggestions []string
}

func (e *UnknownError) Error() string {
	msg := fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}

	return msg
}

func (e *UnknownError) Unwrap() error { return ErrUnknownUnit }

// maxSuggestions bounds the "did you mean" list.
const maxSuggestions = 3

type entry[T any] struct {
	keys  []string
	doc   string
	build func(p Params, logger *zap.Logger) (T, error)
}

// Registry resolves unit names to configured units.
type Registry struct {
	logger       *zap.Logger
	casts        map[string]entry[data.Cast]
	transformers map[string]entry[data.Transformer]
	pipes        map[string]entry[data.Pipe]
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger is handed to units that log, such as the pipes.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns a registry holding every built-in unit.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger:       zap.NewNop(),
		casts:        castEntries(),
		transformers: transformerEntries(),
		pipes:        pipeEntries(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Names returns the canonical unit names of kind, sorted.
func (r *Registry) Names(kind Kind) []string {
	switch kind {
	case KindCast:
		return slices.Sorted(maps.Keys(r.casts))
	case KindTransformer:
		return slices.Sorted(maps.Keys(r.transformers))
	case KindPipe:
		return slices.Sorted(maps.Keys(r.pipes))
	default:
		return nil
	}
}

// Describe returns the parameter keys and a one-line summary of a unit.
func (r *Registry) Describe(kind Kind, name string) ([]string, string, error) {
	switch kind {
	case KindCast:
		e, _, err := lookup(kind, r.casts, name)
		return e.keys, e.doc, err
	case KindTransformer:
		e, _, err := lookup(kind, r.transformers, name)
		return e.keys, e.doc, err
	case KindPipe:
		e, _, err := lookup(kind, r.pipes, name)
		return e.keys, e.doc, err
	default:
		return nil, "", fmt.Errorf("%w: kind %d", ErrUnknownUnit, kind)
	}
}

// Cast builds a cast from a spec string.
func (r *Registry) Cast(spec string) (data.Cast, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}

	return r.CastSpec(s)
}

// CastSpec builds a cast from a parsed spec.
func (r *Registry) CastSpec(s Spec) (data.Cast, error) {
	return build(r, KindCast, r.casts, s)
}

// Transformer builds a transformer from a spec string.
func (r *Registry) Transformer(spec string) (data.Transformer, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}

	return r.TransformerSpec(s)
}

// TransformerSpec builds a transformer from a parsed spec.
func (r *Registry) TransformerSpec(s Spec) (data.Transformer, error) {
	return build(r, KindTransformer, r.transformers, s)
}

// Pipe builds a pipe from a spec string.
func (r *Registry) Pipe(spec string) (data.Pipe, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}

	return r.PipeSpec(s)
}

// PipeSpec builds a pipe from a parsed spec.
func (r *Registry) PipeSpec(s Spec) (data.Pipe, error) {
	return build(r, KindPipe, r.pipes, s)
}

func build[T any](r *Registry, kind Kind, entries map[string]entry[T], s Spec) (T, error) {
	var zero T

	e, name, err := lookup(kind, entries, s.Name)
	if err != nil {
		return zero, err
	}

	err = s.Params.check(e.keys)
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", kind, name, err)
	}

	unit, err := e.build(s.Params, r.logger.With(zap.String("unit", name)))
	if err != nil {
		return zero, fmt.Errorf("%s %s: %w", kind, name, err)
	}

	r.logger.Debug("built unit", zap.Stringer("kind", kind), zap.String("spec", Spec{Name: name, Params: s.Params}.String()))

	return unit, nil
}

// lookup resolves name against the registered names. Exact matches win,
// then normalized identifier matches.
func lookup[T any](kind Kind, entries map[string]entry[T], name string) (entry[T], string, error) {
	if e, ok := entries[name]; ok {
		return e, name, nil
	}

	known := slices.Sorted(maps.Keys(entries))

	candidates := match.RankNames(name, known)
	if exact := candidates.Exact(); exact != nil {
		return entries[exact.Name], exact.Name, nil
	}

	return entry[T]{}, "", &UnknownError{
		Kind:        kind,
		Name:        name,
		Suggestions: match.Suggest(name, known, maxSuggestions),
	}
}
