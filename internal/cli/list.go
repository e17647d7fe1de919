// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/catalog"
)

type listEntry struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
}

func listCmd(_ *app) *cobra.Command {
	var asJSON bool

	c := &cobra.Command{
		Use:   "list",
		Short: "List available pattern demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			demos := catalog.All()
			if asJSON {
				return printListJSON(cmd.OutOrStdout(), demos)
			}
			printList(cmd.OutOrStdout(), demos)
			return nil
		},
	}

	c.Flags().BoolVar(&asJSON, "json", false, "print the catalogue as JSON")
	return c
}

func printList(w io.Writer, demos []catalog.Demo) {
	for _, d := range demos {
		fmt.Fprintf(w, "%-16s %-11s %s\n", d.Name, d.Category, d.Title)
	}
}

func printListJSON(w io.Writer, demos []catalog.Demo) error {
	entries := make([]listEntry, len(demos))
	for i, d := range demos {
		entries[i] = listEntry{Name: d.Name, Title: d.Title, Category: string(d.Category), Summary: d.Summary}
	}
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
