// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/catalog"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [pattern...]",
		Short: "Run the named demos, or the configured ones when none are given",
		Example: `  patterns run observer decorator
  patterns run chain-of-responsibility --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = a.cfg.Patterns
			}
			return a.runDemos(cmd, names)
		},
	}
}

func (a *app) runDemos(cmd *cobra.Command, names []string) error {
	n, err := a.narrator(cmd)
	if err != nil {
		return err
	}
	env := catalog.Env{Narrator: n, Theme: a.cfg.Theme}
	return catalog.RunAll(cmd.Context(), env, names...)
}
