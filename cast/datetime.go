package cast

import (
	"strings"
	"time"

	"data-casts/data"
)

// DefaultLayouts are tried in order when DateTime has no layouts configured.
var DefaultLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	time.DateOnly,
}

// DateTime parses date and time strings into time.Time.
type DateTime struct {
	layouts  []string
	location *time.Location
	unix     bool
}

// DateTimeOption configures DateTime.
type DateTimeOption func(*DateTime)

// WithLayouts replaces the layouts tried when parsing.
func WithLayouts(layouts ...string) DateTimeOption {
	return func(d *DateTime) { d.layouts = layouts }
}

// WithLocation sets the location for layouts without a zone; UTC by default.
func WithLocation(loc *time.Location) DateTimeOption {
	return func(d *DateTime) { d.location = loc }
}

// WithUnixSeconds also accepts integers as Unix timestamps in seconds.
func WithUnixSeconds() DateTimeOption {
	return func(d *DateTime) { d.unix = true }
}

// NewDateTime builds a DateTime cast.
func NewDateTime(opts ...DateTimeOption) DateTime {
	d := DateTime{layouts: DefaultLayouts, location: time.UTC}
	for _, opt := range opts {
		opt(&d)
	}

	if len(d.layouts) == 0 {
		d.layouts = DefaultLayouts
	}

	if d.location == nil {
		d.location = time.UTC
	}

	return d
}

func (DateTime) Name() string { return "datetime" }

func (d DateTime) Cast(value any, field data.Field) (any, error) {
	switch v := value.(type) {
	case string:
		text := strings.TrimSpace(v)
		for _, layout := range d.layouts {
			t, err := time.ParseInLocation(layout, text, d.location)
			if err == nil {
				return t, nil
			}
		}

		return nil, data.Malformed(d.Name(), field, "%q matches none of %d layouts", v, len(d.layouts))
	case int64:
		if d.unix {
			return time.Unix(v, 0).In(d.location), nil
		}
	case int:
		if d.unix {
			return time.Unix(int64(v), 0).In(d.location), nil
		}
	}

	return value, nil
}

// Duration parses Go duration strings such as "2h45m". Integers are read as
// nanoseconds.
type Duration struct{}

func (Duration) Name() string { return "duration" }

func (c Duration) Cast(value any, field data.Field) (any, error) {
	switch v := value.(type) {
	case string:
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return nil, data.Malformed(c.Name(), field, "%v", err)
		}

		return d, nil
	case int64:
		return time.Duration(v), nil
	case int:
		return time.Duration(v), nil
	default:
		return value, nil
	}
}
