package registry

import (
	"fmt"

	"go.uber.org/zap"

	"data-casts/cast"
	"data-casts/data"
	"data-casts/internal/numeric"
	"data-casts/pipe"
	"data-casts/primitive"
	"data-casts/transformer"
)

// layoutSeparator splits datetime layouts; layouts may contain commas.
const layoutSeparator = "|"

func castEntries() map[string]entry[data.Cast] {
	return map[string]entry[data.Cast]{
		"base64_decode": {
			keys: []string{"strict"},
			doc:  "decode base64 text into bytes",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				strict, err := p.Bool("strict", false)
				return cast.Base64Decode{Strict: strict}, err
			},
		},
		"boolean": {
			keys: []string{"truthy", "falsy"},
			doc:  "turn yes/no style words into bools",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				return cast.NewBoolean(p.List("truthy", ","), p.List("falsy", ","))
			},
		},
		"explode": {
			keys: []string{"separator", "trim", "skip_empty"},
			doc:  "split text into a list",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				var opts []cast.ExplodeOption

				trim, err := p.Bool("trim", false)
				if err != nil {
					return nil, err
				}

				if trim {
					opts = append(opts, cast.WithTrim())
				}

				skip, err := p.Bool("skip_empty", false)
				if err != nil {
					return nil, err
				}

				if skip {
					opts = append(opts, cast.WithoutEmpty())
				}

				return cast.NewExplode(p.String("separator", ","), opts...), nil
			},
		},
		"lowercase": {
			doc:   "lowercase text",
			build: fixedCast(cast.Lowercase{}),
		},
		"uppercase": {
			doc:   "uppercase text",
			build: fixedCast(cast.Uppercase{}),
		},
		"trim": {
			keys: []string{"cutset"},
			doc:  "trim whitespace or a cutset",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				return cast.Trim{Cutset: p.String("cutset", "")}, nil
			},
		},
		"round": {
			keys: []string{"precision", "mode"},
			doc:  "round numbers and numeric text",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				precision, mode, err := roundParams(p)
				return cast.Round{Precision: precision, Mode: mode}, err
			},
		},
		"integer": {
			doc:   "parse integers",
			build: fixedCast(cast.Integer{}),
		},
		"float": {
			doc:   "parse floating point numbers",
			build: fixedCast(cast.Float{}),
		},
		"json_decode": {
			keys: []string{"lenient"},
			doc:  "decode JSON (or JSON5 when lenient)",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				lenient, err := p.Bool("lenient", false)
				return cast.JSONDecode{Lenient: lenient}, err
			},
		},
		"datetime": {
			keys: []string{"layouts", "location", "unix"},
			doc:  "parse dates and times",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				opts := []cast.DateTimeOption{cast.WithLayouts(p.List("layouts", layoutSeparator)...)}

				loc, err := p.Location("location")
				if err != nil {
					return nil, err
				}

				opts = append(opts, cast.WithLocation(loc))

				unix, err := p.Bool("unix", false)
				if err != nil {
					return nil, err
				}

				if unix {
					opts = append(opts, cast.WithUnixSeconds())
				}

				return cast.NewDateTime(opts...), nil
			},
		},
		"duration": {
			doc:   "parse durations such as 2h45m",
			build: fixedCast(cast.Duration{}),
		},
		"uuid": {
			doc:   "parse UUIDs",
			build: fixedCast(cast.UUID{}),
		},
		"ascii": {
			keys: []string{"replacement"},
			doc:  "fold text to ASCII",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				return cast.ASCII{Replacement: p.String("replacement", "")}, nil
			},
		},
		"slug": {
			keys: []string{"separator"},
			doc:  "turn text into a URL slug",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				return cast.Slug{Separator: p.String("separator", "")}, nil
			},
		},
		"case": {
			keys: []string{"style"},
			doc:  "convert identifier case",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				style, err := p.Style("style")
				return cast.Case{Style: style}, err
			},
		},
		"null_if_blank": {
			doc:   "replace blank text with null",
			build: fixedCast(cast.NullIfBlank{}),
		},
		"default": {
			keys: []string{"value"},
			doc:  "replace null with a fallback",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				v, ok := p["value"]
				if !ok {
					return nil, fmt.Errorf("%w: %q is required", ErrInvalidParam, "value")
				}

				return cast.Default{Value: v}, nil
			},
		},
		"enum": {
			keys: []string{"values", "case_insensitive"},
			doc:  "restrict text to allowed values",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				insensitive, err := p.Bool("case_insensitive", false)
				if err != nil {
					return nil, err
				}

				return cast.NewEnum(p.List("values", ","), insensitive)
			},
		},
		"truncate": {
			keys: []string{"limit", "suffix"},
			doc:  "cut text to a rune limit",
			build: func(p Params, _ *zap.Logger) (data.Cast, error) {
				limit, err := p.Int("limit", 0)
				if err != nil {
					return nil, err
				}

				return cast.NewTruncate(limit, p.String("suffix", ""))
			},
		},
	}
}

func transformerEntries() map[string]entry[data.Transformer] {
	return map[string]entry[data.Transformer]{
		"base64_encode": {
			keys: []string{"url", "no_pad"},
			doc:  "encode bytes as base64",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				url, err := p.Bool("url", false)
				if err != nil {
					return nil, err
				}

				noPad, err := p.Bool("no_pad", false)

				return transformer.Base64Encode{URL: url, NoPad: noPad}, err
			},
		},
		"implode": {
			keys: []string{"separator"},
			doc:  "join a list into text",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				return transformer.Implode{Separator: p.String("separator", "")}, nil
			},
		},
		"lowercase": {
			doc:   "lowercase text",
			build: fixedTransformer(transformer.Lowercase{}),
		},
		"uppercase": {
			doc:   "uppercase text",
			build: fixedTransformer(transformer.Uppercase{}),
		},
		"number_format": {
			keys: []string{"precision", "decimal", "thousands"},
			doc:  "format numbers with separators",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				precision, err := p.Int("precision", 0)
				if err != nil {
					return nil, err
				}

				return transformer.NewNumberFormat(precision, p.String("decimal", "."), p.String("thousands", ","))
			},
		},
		"round": {
			keys: []string{"precision", "mode"},
			doc:  "round numbers",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				precision, mode, err := roundParams(p)
				return transformer.Round{Precision: precision, Mode: mode}, err
			},
		},
		"date_format": {
			keys: []string{"layout", "location"},
			doc:  "format times",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				loc, err := p.Location("location")
				return transformer.DateFormat{Layout: p.String("layout", ""), Location: loc}, err
			},
		},
		"duration_format": {
			keys: []string{"unit"},
			doc:  "render durations as text, seconds or milliseconds",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				unit := transformer.DurationUnit(p.String("unit", string(transformer.DurationText)))

				switch unit {
				case transformer.DurationText, transformer.DurationSeconds, transformer.DurationMilliseconds:
					return transformer.DurationFormat{Unit: unit}, nil
				default:
					return nil, fmt.Errorf("%w: unknown duration unit %q", ErrInvalidParam, unit)
				}
			},
		},
		"json_encode": {
			keys: []string{"indent"},
			doc:  "encode values as JSON text",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				return transformer.JSONEncode{Indent: p.String("indent", "")}, nil
			},
		},
		"boolean_word": {
			keys: []string{"true", "false"},
			doc:  "render bools as words",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				return transformer.BooleanWord{True: p.String("true", ""), False: p.String("false", "")}, nil
			},
		},
		"human_bytes": {
			keys: []string{"iec"},
			doc:  "render byte counts such as 1.2 MB",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				iec, err := p.Bool("iec", false)
				return transformer.HumanBytes{IEC: iec}, err
			},
		},
		"stringer": {
			doc:   "render Stringer values as text",
			build: fixedTransformer(transformer.Stringer{}),
		},
		"case": {
			keys: []string{"style"},
			doc:  "convert identifier case",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				style, err := p.Style("style")
				return transformer.Case{Style: style}, err
			},
		},
		"truncate": {
			keys: []string{"limit", "suffix"},
			doc:  "cut text to a rune limit",
			build: func(p Params, _ *zap.Logger) (data.Transformer, error) {
				limit, err := p.Int("limit", 0)
				if err != nil {
					return nil, err
				}

				if limit <= 0 {
					return nil, fmt.Errorf("%w: limit must be positive", ErrInvalidParam)
				}

				return transformer.Truncate{Limit: limit, Suffix: p.String("suffix", "")}, nil
			},
		},
	}
}

func pipeEntries() map[string]entry[data.Pipe] {
	return map[string]entry[data.Pipe]{
		"cast_primitives": {
			keys: []string{"fields", "categories", "strict"},
			doc:  "coerce raw values to the declared primitive field types",
			build: func(p Params, logger *zap.Logger) (data.Pipe, error) {
				opts, err := pipeOptions(p, logger)
				if err != nil {
					return nil, err
				}

				if names := p.List("categories", ","); len(names) > 0 {
					categories, err := primitive.ParseCategories(names...)
					if err != nil {
						return nil, fmt.Errorf("%w: %w", ErrInvalidParam, err)
					}

					opts = append(opts, pipe.WithCategories(categories))
				}

				return pipe.NewCastPrimitives(opts...), nil
			},
		},
		"blank_strings_to_null": {
			keys: []string{"fields"},
			doc:  "replace blank text properties with null",
			build: func(p Params, logger *zap.Logger) (data.Pipe, error) {
				opts, err := pipeOptions(p, logger)
				if err != nil {
					return nil, err
				}

				return pipe.NewBlankStringsToNull(opts...), nil
			},
		},
	}
}

func pipeOptions(p Params, logger *zap.Logger) ([]pipe.Option, error) {
	opts := []pipe.Option{pipe.WithLogger(logger)}

	if fields := p.List("fields", ","); len(fields) > 0 {
		opts = append(opts, pipe.WithFields(fields...))
	}

	strict, err := p.Bool("strict", false)
	if err != nil {
		return nil, err
	}

	if strict {
		opts = append(opts, pipe.Strict())
	}

	return opts, nil
}

func roundParams(p Params) (int, numeric.RoundMode, error) {
	precision, err := p.Int("precision", 0)
	if err != nil {
		return 0, 0, err
	}

	mode, err := p.RoundMode("mode")

	return precision, mode, err
}

func fixedCast(c data.Cast) func(Params, *zap.Logger) (data.Cast, error) {
	return func(Params, *zap.Logger) (data.Cast, error) { return c, nil }
}

func fixedTransformer(t data.Transformer) func(Params, *zap.Logger) (data.Transformer, error) {
	return func(Params, *zap.Logger) (data.Transformer, error) { return t, nil }
}
