package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"brewtrack/internal/cellar"
)

func newLogCommand(ctx *commandContext) *cobra.Command {
	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Manage a brew's event log",
	}

	logCmd.AddCommand(newLogAddCommand(ctx))
	logCmd.AddCommand(newLogShowCommand(ctx))
	logCmd.AddCommand(newLogDeleteCommand(ctx))

	return logCmd
}

func newLogAddCommand(ctx *commandContext) *cobra.Command {
	var eventType string

	cmd := &cobra.Command{
		Use:   "add <vessel> <text>",
		Short: "Append a timestamped event to a brew's log",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return fmt.Errorf("event text cannot be empty")
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				kind := strings.TrimSpace(eventType)
				if kind == "" {
					kind = "General"
				}
				if err := m.AddLogEntry(index, kind, text); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s event on vessel %d\n", kind, index+1)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&eventType, "type", "t", "General", "Event type")
	return cmd
}

func newLogShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <vessel>",
		Short: "Show a brew's event log, oldest first",
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

				display := ctx.displaySettings()
				rows := make([][]string, 0, len(slot.Brew.Log))
				for i, entry := range slot.Brew.Log {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						display.FormatLocal(entry.Time),
						entry.Type,
						entry.Text,
					})
				}

				out := cmd.OutOrStdout()
				headers := []string{"#", "When", "Type", "Event"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns, plainOutput(ctx, out)))
				return nil
			})
		},
	}
}

func newLogDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <vessel> <entry>",
		Short: "Delete an event from a brew's log",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			entry, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil || entry < 1 {
				return fmt.Errorf("invalid log entry number %q", args[1])
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				slot, ok := m.Slot(index)
				if !ok {
					return fmt.Errorf("vessel %d does not exist", index+1)
				}
				if !slot.Occupied() {
					return fmt.Errorf("vessel %d (%s) is empty", index+1, slot.Name)
				}
				if entry > len(slot.Brew.Log) {
					return fmt.Errorf("log entry %d out of range (only %d entries exist)", entry, len(slot.Brew.Log))
				}
				m.DeleteLogEntry(index, entry-1)
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted log entry %d from vessel %d\n", entry, index+1)
				return nil
			})
		},
	}
}
