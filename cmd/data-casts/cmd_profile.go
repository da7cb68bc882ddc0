package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"data-casts/internal/profile"
	"data-casts/rule"
)

var errCheckFailed = errors.New("profile check failed")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <profile.yaml>",
		Short: "Validate a binding profile file",
		Long: `Checks every profile in the file: unit names and parameters, rule
definitions and duplicate declarations. Exits non-zero on errors.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := profile.LoadFile(args[0])
			if err != nil {
				return err
			}

			res := profile.Validate(f, a.registry)

			a.logger.Debug("profile checked",
				zap.String("path", args[0]),
				zap.Int("errors", len(res.Errors)),
				zap.Int("warnings", len(res.Warnings)))

			w := cmd.OutOrStdout()

			if a.asJSON {
				if err := printJSON(w, res); err != nil {
					return err
				}
			} else {
				for _, d := range res.All() {
					fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
				}

				if res.IsValid() {
					fmt.Fprintf(w, "%s: ok (%d profiles)\n", args[0], len(f.Profiles))
				}
			}

			if res.HasErrors() {
				return fmt.Errorf("%w: %d errors", errCheckFailed, len(res.Errors))
			}

			return nil
		},
	}
}

type fieldRules struct {
	Profile string   `json:"profile"`
	Field   string   `json:"field"`
	Rules   []string `json:"rules"`

	set rule.Set
}

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules <profile.yaml> [profile]",
		Short: "Print the rule sets bound by a profile",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := profile.LoadFile(args[0])
			if err != nil {
				return err
			}

			profiles := f.Profiles
			if len(args) == 2 {
				p := f.Profile(args[1])
				if p == nil {
					return fmt.Errorf("profile %q not found in %s (have: %s)", args[1], args[0], strings.Join(f.Names(), ", "))
				}

				profiles = []profile.Profile{*p}
			}

			var out []fieldRules

			for i := range profiles {
				b, err := profile.Build(&profiles[i], a.registry, nil)
				if err != nil {
					return err
				}

				for _, name := range b.Fields() {
					if set := b.Rules(name); len(set) > 0 {
						out = append(out, fieldRules{Profile: b.Name(), Field: name, Rules: set.Strings(), set: set})
					}
				}
			}

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), out)
			}

			for _, r := range out {
				fmt.Fprintf(cmd.OutOrStdout(), "%s.%s: %s\n", r.Profile, r.Field, r.set)
			}

			return nil
		},
	}
}
