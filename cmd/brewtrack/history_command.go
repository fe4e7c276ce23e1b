package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"brewtrack/internal/cellar"
	"brewtrack/internal/timeutil"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived brews, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(func(m *cellar.Manager) error {
				out := cmd.OutOrStdout()
				history := m.History()
				if limit > 0 && limit < len(history) {
					history = history[:limit]
				}

				if asJSON {
					encoder := json.NewEncoder(out)
					encoder.SetIndent("", "  ")
					return encoder.Encode(history)
				}

				if len(history) == 0 {
					fmt.Fprintln(out, "No archived brews yet")
					return nil
				}

				display := ctx.displaySettings()
				rows := make([][]string, 0, len(history))
				for i, record := range history {
					abv := timeutil.Placeholder
					if value, ok := record.ABV(); ok {
						abv = fmt.Sprintf("%.2f%%", value)
					}
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						record.Name,
						record.Category,
						formatVolumeCell(record.Volume),
						abv,
						record.ArchivedFrom,
						display.FormatLocal(record.StartDate),
					})
				}

				headers := []string{"#", "Brew", "Category", "Volume", "ABV", "Vessel", "Started"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns, plainOutput(ctx, out)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit history as JSON")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many archives (0 for all)")

	cmd.AddCommand(newHistoryShowCommand(ctx))
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <n>",
		Short: "Show the full record of an archived brew",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil || n < 1 {
				return fmt.Errorf("invalid history entry number %q", args[0])
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				history := m.History()
				if n > len(history) {
					return fmt.Errorf("history entry %d out of range (only %d archives exist)", n, len(history))
				}
				record := history[n-1]

				out := cmd.OutOrStdout()
				display := ctx.displaySettings()
				abv := timeutil.Placeholder
				if value, ok := record.ABV(); ok {
					abv = fmt.Sprintf("%.2f%%", value)
				}

				fmt.Fprintf(out, "%s (%s)\n", record.Name, record.ID)
				fmt.Fprintf(out, "  Category:  %s\n", record.Category)
				fmt.Fprintf(out, "  Vessel:    %s\n", record.ArchivedFrom)
				fmt.Fprintf(out, "  Started:   %s\n", display.FormatLocal(record.StartDate))
				fmt.Fprintf(out, "  OG/FG:     %s / %s\n", formatMetric(record.OG), formatMetric(record.FG))
				fmt.Fprintf(out, "  ABV:       %s\n", abv)
				fmt.Fprintf(out, "  Volume:    %s final (started at %s)\n",
					formatVolumeCell(record.Volume), formatVolumeCell(record.OriginalVolume))
				if strings.TrimSpace(record.Recipe) != "" {
					fmt.Fprintf(out, "  Recipe:    %s\n", record.Recipe)
				}
				if strings.TrimSpace(record.Notes) != "" {
					fmt.Fprintf(out, "  Notes:     %s\n", record.Notes)
				}

				rows := make([][]string, 0, len(record.Log))
				for i, entry := range record.Log {
					rows = append(rows, []string{
						strconv.Itoa(i + 1),
						display.FormatLocal(entry.Time),
						entry.Type,
						entry.Text,
					})
				}
				headers := []string{"#", "When", "Type", "Event"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns, plainOutput(ctx, out)))
				return nil
			})
		},
	}
}
