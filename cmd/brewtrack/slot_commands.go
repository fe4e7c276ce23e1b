package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brewtrack/internal/cellar"
)

func newSlotCommand(ctx *commandContext) *cobra.Command {
	slotCmd := &cobra.Command{
		Use:   "slot",
		Short: "Manage vessel slots",
	}

	slotCmd.AddCommand(newSlotAddCommand(ctx))
	slotCmd.AddCommand(newSlotRemoveCommand(ctx))
	slotCmd.AddCommand(newSlotRenameCommand(ctx))

	return slotCmd
}

func newSlotAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Append a new empty vessel slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(func(m *cellar.Manager) error {
				slot := m.AddSlot()
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d vessels total)\n", slot.Name, m.SlotCount())
				return nil
			})
		},
	}
}

func newSlotRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the last vessel slot if it is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(func(m *cellar.Manager) error {
				if !m.RemoveLastSlot() {
					return fmt.Errorf("the last vessel is occupied or no vessels remain")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed the last vessel (%d remaining)\n", m.SlotCount())
				return nil
			})
		},
	}
}

func newSlotRenameCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <vessel> <name>",
		Short: "Rename a vessel slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			name := strings.TrimSpace(args[1])
			if name == "" {
				return fmt.Errorf("vessel name cannot be empty")
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				if _, ok := m.Slot(index); !ok {
					return fmt.Errorf("vessel %d does not exist", index+1)
				}
				m.RenameSlot(index, name)
				fmt.Fprintf(cmd.OutOrStdout(), "Vessel %d is now %q\n", index+1, name)
				return nil
			})
		},
	}
}
