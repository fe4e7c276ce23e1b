package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"brewtrack/internal/cellar"
	"brewtrack/internal/timeutil"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show every vessel slot and its current brew",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withManager(func(m *cellar.Manager) error {
				out := cmd.OutOrStdout()
				slots := m.Slots()

				if asJSON {
					encoder := json.NewEncoder(out)
					encoder.SetIndent("", "  ")
					return encoder.Encode(statusPayload(slots))
				}

				now := timeutil.Now()
				rows := make([][]string, 0, len(slots))
				for i, slot := range slots {
					row := []string{
						strconv.Itoa(i + 1),
						slot.Name,
						timeutil.Placeholder,
						timeutil.Placeholder,
						timeutil.Placeholder,
						timeutil.Placeholder,
						timeutil.Placeholder,
						timeutil.Placeholder,
					}
					if b := slot.Brew; b != nil {
						row[2] = b.Name
						row[3] = b.Category
						row[4] = b.Stage
						row[5] = formatVolumeCell(b.Volume)
						row[6] = formatABV(b)
						if start, ok := timeutil.ParseISO(b.StartDate); ok {
							row[7] = timeutil.HumanElapsed(start, now)
						}
					}
					rows = append(rows, row)
				}

				headers := []string{"#", "Vessel", "Brew", "Category", "Stage", "Volume", "ABV", "Elapsed"}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft}
				fmt.Fprintln(out, renderTable(headers, rows, aligns, plainOutput(ctx, out)))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit slot state as JSON")
	return cmd
}

type statusSlot struct {
	Vessel   int    `json:"vessel"`
	Name     string `json:"name"`
	Occupied bool   `json:"occupied"`
	BrewID   string `json:"brew_id,omitempty"`
	BrewName string `json:"brew_name,omitempty"`
	Stage    string `json:"stage,omitempty"`
}

func statusPayload(slots []cellar.Slot) []statusSlot {
	payload := make([]statusSlot, 0, len(slots))
	for i, slot := range slots {
		entry := statusSlot{Vessel: i + 1, Name: slot.Name, Occupied: slot.Occupied()}
		if slot.Brew != nil {
			entry.BrewID = slot.Brew.ID
			entry.BrewName = slot.Brew.Name
			entry.Stage = slot.Brew.Stage
		}
		payload = append(payload, entry)
	}
	return payload
}
