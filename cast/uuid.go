package cast

import (
	"github.com/google/uuid"

	"data-casts/data"
)

// UUID parses UUID strings, in any of the forms uuid.Parse accepts, and
// 16-byte slices.
type UUID struct{}

func (UUID) Name() string { return "uuid" }

func (c UUID) Cast(value any, field data.Field) (any, error) {
	switch v := value.(type) {
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, data.Malformed(c.Name(), field, "%v", err)
		}

		return id, nil
	case []byte:
		id, err := uuid.FromBytes(v)
		if err != nil {
			return nil, data.Malformed(c.Name(), field, "%v", err)
		}

		return id, nil
	default:
		return value, nil
	}
}
