package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yosuke-furukawa/json5/encoding/json5"
	"go.uber.org/zap"

	"data-casts/data"
	"data-casts/internal/registry"
)

type unitResult struct {
	Unit   string `json:"unit"`
	Input  any    `json:"input"`
	Output any    `json:"output"`
}

func newCastCmd(a *app) *cobra.Command {
	var null bool

	cmd := &cobra.Command{
		Use:   "cast <unit> [value]",
		Short: "Run a cast over a raw text value",
		Long: `Runs one cast over a raw input value, the way a value arriving from a
request would be cast before validation.

Example:
  data-casts cast "round:precision=2" 3.14159
  data-casts cast --null "default:value=n/a"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.registry.Cast(args[0])
			if err != nil {
				return err
			}

			var input any
			if !null {
				if len(args) < 2 {
					return fmt.Errorf("cast %s: value argument required (or --null)", args[0])
				}

				input = args[1]
			}

			output, err := c.Cast(input, data.Field{Name: "value"})
			if err != nil {
				return err
			}

			a.logger.Debug("cast applied", zap.String("unit", args[0]), zap.Any("output", output))

			return a.printResult(cmd, unitResult{Unit: data.NameOf(c), Input: input, Output: output})
		},
	}

	cmd.Flags().BoolVar(&null, "null", false, "cast a null input instead of a value")

	return cmd
}

func newTransformCmd(a *app) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "transform <unit> <value>",
		Short: "Run a transformer over a typed value",
		Long: `Runs one transformer over a typed value. The value is read as JSON5 when it
parses (numbers, booleans, arrays, objects) and as text otherwise. --as runs
a cast first to produce types JSON cannot express, such as times.

Example:
  data-casts transform "number_format:precision=2" 1234.5
  data-casts transform "date_format:layout=02 Jan 2006" --as datetime 2024-03-01`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.registry.Transformer(args[0])
			if err != nil {
				return err
			}

			field := data.Field{Name: "value"}

			input, err := a.typedInput(args[1], as, field)
			if err != nil {
				return err
			}

			output, err := t.Transform(input, field)
			if err != nil {
				return err
			}

			return a.printResult(cmd, unitResult{Unit: data.NameOf(t), Input: input, Output: output})
		},
	}

	cmd.Flags().StringVar(&as, "as", "", "cast spec applied to the value before transforming")

	return cmd
}

// typedInput turns a command-line argument into the value a transformer sees.
func (a *app) typedInput(raw, as string, field data.Field) (any, error) {
	if as != "" {
		c, err := a.registry.Cast(as)
		if err != nil {
			return nil, err
		}

		return c.Cast(raw, field)
	}

	var decoded any
	if err := json5.Unmarshal([]byte(raw), &decoded); err == nil {
		return decoded, nil
	}

	return raw, nil
}

func (a *app) printResult(cmd *cobra.Command, res unitResult) error {
	if a.asJSON {
		return printJSON(cmd.OutOrStdout(), res)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), display(res.Output))

	return err
}

// display renders a unit output for humans.
func display(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	}

	if out, err := json.Marshal(v); err == nil {
		return string(out)
	}

	return fmt.Sprint(v)
}

type unitInfo struct {
	Kind   string   `json:"kind"`
	Name   string   `json:"name"`
	Params []string `json:"params,omitempty"`
	Doc    string   `json:"doc"`
}

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List registered casts, transformers and pipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []unitInfo

			for _, kind := range []registry.Kind{registry.KindCast, registry.KindTransformer, registry.KindPipe} {
				for _, name := range a.registry.Names(kind) {
					keys, doc, err := a.registry.Describe(kind, name)
					if err != nil {
						return err
					}

					infos = append(infos, unitInfo{Kind: kind.String(), Name: name, Params: keys, Doc: doc})
				}
			}

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), infos)
			}

			w := cmd.OutOrStdout()
			for _, info := range infos {
				params := ""
				if len(info.Params) > 0 {
					params = " [" + strings.Join(info.Params, ", ") + "]"
				}

				fmt.Fprintf(w, "%-12s %-22s %s%s\n", info.Kind, info.Name, info.Doc, params)
			}

			return nil
		},
	}
}
