package pipe

import (
	"reflect"
	"strings"

	"go.uber.org/zap"

	"data-casts/data"
)

// BlankStringsToNull replaces empty and whitespace-only string values of the
// declared fields with nil.
type BlankStringsToNull struct {
	opts options
}

// NewBlankStringsToNull builds the pipe; WithFields limits it to a subset of
// the declared fields.
func NewBlankStringsToNull(opts ...Option) BlankStringsToNull {
	return BlankStringsToNull{opts: newOptions(opts)}
}

func (BlankStringsToNull) Name() string { return "blank_strings_to_null" }

func (p BlankStringsToNull) Handle(props data.Properties, class *data.Class) (data.Properties, error) {
	fields, err := selectFields(class, p.opts.fields)
	if err != nil {
		return props, err
	}

	out := props.Clone()

	for _, f := range fields {
		raw, present := out[f.Name]
		if !present || !isBlankString(raw) {
			continue
		}

		p.opts.logger.Debug("blank property nulled",
			zap.String("class", class.Name),
			zap.String("property", f.Name))

		out[f.Name] = nil
	}

	return out, nil
}

func isBlankString(v any) bool {
	rv := reflect.ValueOf(v)

	return rv.IsValid() && rv.Kind() == reflect.String && strings.TrimSpace(rv.String()) == ""
}
