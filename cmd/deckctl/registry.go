// cmd/deckctl/registry.go
package main

import (
	"fmt"
	"time"

	"pitchdeck/pkg/registry"

	"github.com/spf13/cobra"
)

func newRegistryCmd(opts *rootOptions) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the activity registry the workers validate against",
	}
	cmd.PersistentFlags().StringVar(&path, "path", "", "registry file; empty uses the built-in catalog")

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check naming, uniqueness, timeouts and schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return err
			}
			if err := reg.Validate(); err != nil {
				return fmt.Errorf("registry validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registry validation passed (%d activities).\n", len(reg.Activities))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List registered activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := registry.LoadRegistry(path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.format == formatJSON {
				return writeJSON(out, reg)
			}
			for _, a := range reg.Activities {
				fmt.Fprintf(out, "%-26s %-18s %-8s %s\n", a.ID, a.TaskType, a.Timeout, a.ImplementationStatus)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Write the built-in catalog to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.Default()
			if err := reg.Save(args[0], time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d activities to %s\n", len(reg.Activities), args[0])
			return nil
		},
	})

	return cmd
}
