package transformer

import (
	"encoding/json"
	"time"

	"data-casts/data"
)

// DateFormat renders time.Time values with a layout.
type DateFormat struct {
	// Layout defaults to time.RFC3339.
	Layout string
	// Location converts the time before formatting; nil keeps its own.
	Location *time.Location
}

func (DateFormat) Name() string { return "date_format" }

func (d DateFormat) Transform(value any, _ data.Field) (any, error) {
	var t time.Time

	switch v := value.(type) {
	case time.Time:
		t = v
	case *time.Time:
		if v == nil {
			return value, nil
		}

		t = *v
	default:
		return value, nil
	}

	if d.Location != nil {
		t = t.In(d.Location)
	}

	layout := d.Layout
	if layout == "" {
		layout = time.RFC3339
	}

	return t.Format(layout), nil
}

// DurationUnit selects how DurationFormat renders a duration.
type DurationUnit string

const (
	DurationText         DurationUnit = "string"
	DurationSeconds      DurationUnit = "seconds"
	DurationMilliseconds DurationUnit = "milliseconds"
)

// DurationFormat renders time.Duration values as text ("1m30s"), float
// seconds or integer milliseconds.
type DurationFormat struct {
	Unit DurationUnit
}

func (DurationFormat) Name() string { return "duration_format" }

func (f DurationFormat) Transform(value any, field data.Field) (any, error) {
	d, ok := value.(time.Duration)
	if !ok {
		return value, nil
	}

	switch f.Unit {
	case "", DurationText:
		return d.String(), nil
	case DurationSeconds:
		return d.Seconds(), nil
	case DurationMilliseconds:
		return d.Milliseconds(), nil
	default:
		return nil, data.InvalidConfig(f.Name(), "unknown unit %q for %q", f.Unit, field.Name)
	}
}

// JSONEncode renders any value as a JSON string.
type JSONEncode struct {
	Indent string
}

func (JSONEncode) Name() string { return "json_encode" }

func (j JSONEncode) Transform(value any, field data.Field) (any, error) {
	var (
		out []byte
		err error
	)

	if j.Indent != "" {
		out, err = json.MarshalIndent(value, "", j.Indent)
	} else {
		out, err = json.Marshal(value)
	}

	if err != nil {
		return nil, data.Unsupported(j.Name(), field, value)
	}

	return string(out), nil
}

// BooleanWord renders bools as words.
type BooleanWord struct {
	True  string
	False string
}

func (BooleanWord) Name() string { return "boolean_word" }

func (b BooleanWord) Transform(value any, _ data.Field) (any, error) {
	v, ok := value.(bool)
	if !ok {
		return value, nil
	}

	if v {
		return wordOr(b.True, "true"), nil
	}

	return wordOr(b.False, "false"), nil
}

func wordOr(word, fallback string) string {
	if word == "" {
		return fallback
	}

	return word
}
