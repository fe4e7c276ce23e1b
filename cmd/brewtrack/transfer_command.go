package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brewtrack/internal/cellar"
)

func newTransferCommand(ctx *commandContext) *cobra.Command {
	var loss float64

	cmd := &cobra.Command{
		Use:   "transfer <from> <to>",
		Short: "Move a brew between vessels, recording transfer loss",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			dest, err := parseSlotArg(args[1])
			if err != nil {
				return err
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				if slot, ok := m.Slot(dest); ok && slot.Occupied() {
					return fmt.Errorf("vessel %d already holds %q; archive or transfer it first", dest+1, slot.Brew.Name)
				}
				if err := m.Transfer(src, dest, loss); err != nil {
					return err
				}
				slot, _ := m.Slot(dest)
				fmt.Fprintf(cmd.OutOrStdout(), "Transferred %q to vessel %d (%s remaining)\n",
					slot.Brew.Name, dest+1, formatVolumeCell(slot.Brew.Volume))
				return nil
			})
		},
	}

	cmd.Flags().Float64VarP(&loss, "loss", "l", 0, "Volume lost in transfer, in liters")
	return cmd
}
