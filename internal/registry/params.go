package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"data-casts/internal/numeric"
	"data-casts/internal/textcase"
)

var (
	ErrMalformedSpec = errors.New("malformed unit spec")
	ErrInvalidParam  = errors.New("invalid unit parameter")
)

// Params holds the raw parameters of a unit spec.
type Params map[string]string

// Spec is a parsed unit spec.
type Spec struct {
	Name   string
	Params Params
}

// ParseSpec parses "name" or "name:key=value;key=value". Keys are trimmed,
// values are kept verbatim so separators such as ", " survive.
func ParseSpec(s string) (Spec, error) {
	name, rawParams, hasParams := strings.Cut(s, ":")

	spec := Spec{Name: strings.TrimSpace(name), Params: Params{}}
	if spec.Name == "" {
		return Spec{}, fmt.Errorf("%w: %q has no unit name", ErrMalformedSpec, s)
	}

	if !hasParams {
		return spec, nil
	}

	for _, pair := range strings.Split(rawParams, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, "=")

		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return Spec{}, fmt.Errorf("%w: %q in %q is not key=value", ErrMalformedSpec, pair, s)
		}

		if _, dup := spec.Params[key]; dup {
			return Spec{}, fmt.Errorf("%w: parameter %q repeated in %q", ErrMalformedSpec, key, s)
		}

		spec.Params[key] = value
	}

	return spec, nil
}

// String renders the spec back into its textual form with sorted keys.
func (s Spec) String() string {
	if len(s.Params) == 0 {
		return s.Name
	}

	keys := slices.Sorted(maps.Keys(s.Params))

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+s.Params[k])
	}

	return s.Name + ":" + strings.Join(pairs, ";")
}

// check rejects keys outside allowed.
func (p Params) check(allowed []string) error {
	for _, key := range slices.Sorted(maps.Keys(p)) {
		if !slices.Contains(allowed, key) {
			if len(allowed) == 0 {
				return fmt.Errorf("%w: %q (unit takes no parameters)", ErrInvalidParam, key)
			}

			return fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidParam, key, strings.Join(allowed, ", "))
		}
	}

	return nil
}

func (p Params) String(key, fallback string) string {
	if v, ok := p[key]; ok {
		return v
	}

	return fallback
}

func (p Params) Int(key string, fallback int) (int, error) {
	v, ok := p[key]
	if !ok {
		return fallback, nil
	}

	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidParam, key, v)
	}

	return i, nil
}

func (p Params) Bool(key string, fallback bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return fallback, nil
	}

	// a bare flag such as "strict=" reads as true
	if strings.TrimSpace(v) == "" {
		return true, nil
	}

	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidParam, key, v)
	}

	return b, nil
}

// List splits a parameter on sep and trims the items.
func (p Params) List(key, sep string) []string {
	v, ok := p[key]
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}

	items := strings.Split(v, sep)
	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	return items
}

func (p Params) RoundMode(key string) (numeric.RoundMode, error) {
	v, ok := p[key]
	if !ok {
		return numeric.HalfUp, nil
	}

	mode, err := numeric.ParseRoundMode(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}

	return mode, nil
}

func (p Params) Style(key string) (textcase.Style, error) {
	v, ok := p[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q is required", ErrInvalidParam, key)
	}

	style, err := textcase.ParseStyle(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}

	return style, nil
}

func (p Params) Location(key string) (*time.Location, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}

	loc, err := time.LoadLocation(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
	}

	return loc, nil
}
