package pipe

import (
	"errors"
	"fmt"

	"data-casts/data"
)

var ErrNilClass = errors.New("pipe requires a class")

// selectFields returns the declared fields the pipe applies to.
func selectFields(class *data.Class, names []string) ([]data.Field, error) {
	if class == nil {
		return nil, ErrNilClass
	}

	if len(names) == 0 {
		return class.Fields, nil
	}

	fields := make([]data.Field, 0, len(names))

	for _, name := range names {
		f, ok := class.Field(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", data.ErrUnknownField, class.Name, name)
		}

		fields = append(fields, f)
	}

	return fields, nil
}
