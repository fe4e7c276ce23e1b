package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brewtrack/internal/brew"
	"brewtrack/internal/cellar"
	"brewtrack/internal/series"
)

func newChartCommand(ctx *commandContext) *cobra.Command {
	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart readings mined from a brew's event log",
	}

	chartCmd.AddCommand(newChartGravityCommand(ctx))
	chartCmd.AddCommand(newChartTempCommand(ctx))

	return chartCmd
}

func chartBrew(ctx *commandContext, index int, fn func(*brew.Brew, string) error) error {
	return ctx.withManager(func(m *cellar.Manager) error {
		slot, ok := m.Slot(index)
		if !ok {
			return fmt.Errorf("vessel %d does not exist", index+1)
		}
		if !slot.Occupied() {
			return fmt.Errorf("vessel %d (%s) is empty", index+1, slot.Name)
		}
		return fn(slot.Brew, slot.Name)
	})
}

func newChartGravityCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "gravity <vessel>",
		Short: "Plot the gravity readings found in the brew's log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			return chartBrew(ctx, index, func(b *brew.Brew, vesselName string) error {
				points := series.Gravity(b)
				out := cmd.OutOrStdout()
				if len(points) == 0 {
					fmt.Fprintf(out, "No gravity readings found in the log of %q\n", b.Name)
					return nil
				}

				display := ctx.displaySettings()
				low, high := points[0].Value, points[0].Value
				for _, p := range points {
					if p.Value < low {
						low = p.Value
					}
					if p.Value > high {
						high = p.Value
					}
				}

				rows := make([][]string, 0, len(points))
				for _, p := range points {
					rows = append(rows, []string{
						display.FormatLocal(p.Time),
						fmt.Sprintf("%.3f", p.Value),
						p.Label,
						bar(p.Value, low, high),
					})
				}

				fmt.Fprintf(out, "Gravity for %q in %s\n", b.Name, vesselName)
				headers := []string{"When", "SG", "Label", ""}
				aligns := []columnAlignment{alignLeft, alignRight, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns, plainOutput(ctx, out)))
				return nil
			})
		},
	}
}

func newChartTempCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "temp <vessel>",
		Short: "Plot the temperature readings found in the brew's log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			return chartBrew(ctx, index, func(b *brew.Brew, vesselName string) error {
				points := series.Temperature(b)
				out := cmd.OutOrStdout()
				if len(points) == 0 {
					fmt.Fprintf(out, "No temperature readings found in the log of %q\n", b.Name)
					return nil
				}

				display := ctx.displaySettings()
				low, high := points[0].Value, points[0].Value
				for _, p := range points {
					if p.Value < low {
						low = p.Value
					}
					if p.Value > high {
						high = p.Value
					}
				}

				rows := make([][]string, 0, len(points))
				for _, p := range points {
					rows = append(rows, []string{
						display.FormatLocal(p.Time),
						fmt.Sprintf("%.1f°%s", p.Value, p.Unit),
						bar(p.Value, low, high),
					})
				}

				fmt.Fprintf(out, "Temperature for %q in %s\n", b.Name, vesselName)
				headers := []string{"When", "Temp", ""}
				aligns := []columnAlignment{alignLeft, alignRight, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns, plainOutput(ctx, out)))
				return nil
			})
		},
	}
}

// bar renders a value's position within [low, high] as a proportional run of
// block characters, barWidth long at the top of the range.
const barWidth = 24

func bar(value, low, high float64) string {
	if high <= low {
		return strings.Repeat("#", barWidth/2)
	}
	filled := int((value - low) / (high - low) * barWidth)
	if filled < 1 {
		filled = 1
	}
	return strings.Repeat("#", filled)
}
