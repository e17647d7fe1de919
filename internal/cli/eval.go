// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/patterns/interpreter"
)

func evalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an integer expression with + - and parentheses",
		Example: `  patterns eval "5 + (10 - 3)"
  patterns eval 10 - 3 - 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := strings.Join(args, " ")
			e, err := interpreter.Parse(src)
			if err != nil {
				return err
			}
			a.log.Debug("expression parsed", zap.String("src", src), zap.Stringer("tree", e))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", e, e.Interpret())
			return err
		},
	}
}
