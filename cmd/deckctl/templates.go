// cmd/deckctl/templates.go
package main

import (
	"fmt"
	"os"
	"time"

	"pitchdeck/internal/deck/templates"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse and clone the starter deck catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list := templates.List()
			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				return writeJSON(out, list)
			}
			for _, t := range list {
				fmt.Fprintf(out, "%-18s %-12s %s\n", t.ID, t.Category, t.Name)
			}
			return nil
		},
	})

	var outPath string
	clone := &cobra.Command{
		Use:   "clone <template-id>",
		Short: "Produce a new deck from a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := templates.Clone(args[0], time.Now())
			if err != nil {
				return err
			}
			if outPath == "" {
				return writeJSON(cmd.OutOrStdout(), deck)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			if err := writeJSON(f, deck); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cloned %s into %s (id %s)\n", args[0], outPath, deck.ID)
			return nil
		},
	}
	clone.Flags().StringVar(&outPath, "out", "", "write the deck to this file instead of stdout")
	cmd.AddCommand(clone)

	return cmd
}
