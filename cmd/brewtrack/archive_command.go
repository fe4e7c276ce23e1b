package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brewtrack/internal/cellar"
)

func newArchiveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <vessel>",
		Short: "Finish a brew and move it to the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				slot, ok := m.Slot(index)
				if !ok {
					return fmt.Errorf("vessel %d does not exist", index+1)
				}
				if !slot.Occupied() {
					return fmt.Errorf("vessel %d (%s) is empty", index+1, slot.Name)
				}
				name := slot.Brew.Name
				if err := m.ArchiveBrew(index); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Archived %q; vessel %d is free\n", name, index+1)
				return nil
			})
		},
	}
}
