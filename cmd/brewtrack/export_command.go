package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"brewtrack/internal/cellar"
	"brewtrack/internal/config"
	"brewtrack/internal/fileutil"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write a JSON snapshot of active and archived brews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(args[0])
			if target == "" {
				return fmt.Errorf("export path is required")
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve export path: %w", err)
			}
			// Keep the previous snapshot around as .bak before overwriting.
			if _, err := os.Stat(expanded); err == nil {
				if err := fileutil.CopyFile(expanded, expanded+".bak"); err != nil {
					return fmt.Errorf("back up previous export: %w", err)
				}
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				if err := m.Export(expanded); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported active brews and history to %s\n", expanded)
				return nil
			})
		},
	}
	return cmd
}
