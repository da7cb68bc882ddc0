// Package main provides the CLI entrypoint for data-casts.
//
// data-casts exercises the casts, transformers and pipes of this module from
// the command line and checks binding profiles:
//   - cast and transform run a single unit over a value
//   - rules prints the rule sets bound by a profile
//   - check validates a profile file
//   - units lists every registered unit and its parameters
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		os.Exit(1)
	}
}
