package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"data-casts/internal/registry"
)

// app carries the global flags and the resources built from them.
type app struct {
	verbose bool
	asJSON  bool

	logger   *zap.Logger
	registry *registry.Registry
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "data-casts",
		Short: "Run value casts, transformers and pipes; check binding profiles",
		Long: `data-casts runs the stateless value units of this module.

Units are named by spec strings such as "trim", "round:precision=2" or
"number_format:precision=2;thousands=.". Run "data-casts units" for the list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				config := zap.NewProductionConfig()
				if a.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}

				logger, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}

				a.logger = logger
			}

			a.registry = registry.New(registry.WithLogger(a.logger))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		newCastCmd(a),
		newTransformCmd(a),
		newRulesCmd(a),
		newCheckCmd(a),
		newUnitsCmd(a),
	)

	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
