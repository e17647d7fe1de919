// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/catalog"
)

func describeCmd(a *app) *cobra.Command {
	var plain bool

	c := &cobra.Command{
		Use:   "describe <pattern>",
		Short: "Show what a pattern is for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			md := describeMarkdown(d)
			if plain {
				_, err := fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}

			r, err := glamour.NewTermRenderer(
				glamour.WithStylePath(strings.ToLower(a.cfg.Theme)),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("describe: renderer: %w", err)
			}
			out, err := r.Render(md)
			if err != nil {
				return fmt.Errorf("describe: render: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	c.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	return c
}

func describeMarkdown(d catalog.Demo) string {
	return fmt.Sprintf("# %s\n\n_%s pattern_\n\n%s\n", d.Title, d.Category, d.Summary)
}
