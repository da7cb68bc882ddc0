package pipe

import (
	"go.uber.org/zap"

	"data-casts/primitive"
)

type options struct {
	logger     *zap.Logger
	categories primitive.CategoryEnum
	fields     []string
	strict     bool
}

// Option configures a pipe.
type Option func(*options)

// WithLogger logs every rewritten property at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCategories restricts the conversions CastPrimitives may apply.
func WithCategories(categories primitive.CategoryEnum) Option {
	return func(o *options) { o.categories = categories }
}

// WithFields limits the pipe to the named properties.
func WithFields(names ...string) Option {
	return func(o *options) { o.fields = names }
}

// Strict makes CastPrimitives report values it could not coerce instead of
// leaving them for validation.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

func newOptions(opts []Option) options {
	o := options{
		logger:     zap.NewNop(),
		categories: primitive.CategoryAll,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
