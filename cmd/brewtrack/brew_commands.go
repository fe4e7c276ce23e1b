package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"brewtrack/internal/brew"
	"brewtrack/internal/cellar"
	"brewtrack/internal/gravity"
	"brewtrack/internal/timeutil"
)

func newBrewCommand(ctx *commandContext) *cobra.Command {
	brewCmd := &cobra.Command{
		Use:   "brew",
		Short: "Create and inspect brews",
	}

	brewCmd.AddCommand(newBrewCreateCommand(ctx))
	brewCmd.AddCommand(newBrewShowCommand(ctx))
	brewCmd.AddCommand(newBrewSetCommand(ctx))

	return brewCmd
}

func newBrewCreateCommand(ctx *commandContext) *cobra.Command {
	var (
		name     string
		category string
		stage    string
		recipe   string
		notes    string
		volume   float64
		og       float64
		ph       float64
		temp     float64
	)

	cmd := &cobra.Command{
		Use:     "create <vessel>",
		Aliases: []string{"new"},
		Short:   "Start a new brew in a vessel slot",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			return ctx.withManager(func(m *cellar.Manager) error {
				if slot, ok := m.Slot(index); ok && slot.Occupied() {
					return fmt.Errorf("vessel %d already holds %q; archive or transfer it first", index+1, slot.Brew.Name)
				}
				created, err := m.CreateBrew(index, brew.Fields{
					Name:     strings.TrimSpace(name),
					Category: strings.TrimSpace(category),
					Stage:    strings.TrimSpace(stage),
					Recipe:   recipe,
					Notes:    notes,
					Volume:   volume,
					OG:       og,
					PH:       ph,
					Temp:     temp,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%s) in vessel %d\n", created.Name, created.ID, index+1)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Brew name")
	cmd.Flags().StringVar(&category, "category", "", "Category (defaults to the first configured category)")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage (defaults to the first configured stage)")
	cmd.Flags().StringVar(&recipe, "recipe", "", "Recipe notes")
	cmd.Flags().StringVar(&notes, "notes", "", "Freeform notes")
	cmd.Flags().Float64VarP(&volume, "volume", "v", 0, "Starting volume in liters")
	cmd.Flags().Float64Var(&og, "og", 0, "Original gravity")
	cmd.Flags().Float64Var(&ph, "ph", 0, "Measured pH")
	cmd.Flags().Float64Var(&temp, "temp", 0, "Measured temperature")
	return cmd
}

func newBrewShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <vessel>",
		Short: "Show the full detail of a brew",
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
				printBrewDetail(cmd, ctx, slot.Name, slot.Brew)
				return nil
			})
		},
	}
}

func printBrewDetail(cmd *cobra.Command, ctx *commandContext, vesselName string, b *brew.Brew) {
	out := cmd.OutOrStdout()
	display := ctx.displaySettings()

	fmt.Fprintf(out, "%s (%s)\n", b.Name, b.ID)
	fmt.Fprintf(out, "  Vessel:    %s\n", vesselName)
	fmt.Fprintf(out, "  Category:  %s\n", b.Category)
	fmt.Fprintf(out, "  Stage:     %s\n", b.Stage)
	fmt.Fprintf(out, "  Started:   %s\n", display.FormatLocal(b.StartDate))
	if start, ok := timeutil.ParseISO(b.StartDate); ok {
		fmt.Fprintf(out, "  Elapsed:   %s\n", timeutil.HumanElapsed(start, timeutil.Now()))
	}
	fmt.Fprintf(out, "  Volume:    %s (started at %s)\n", formatVolumeCell(b.Volume), formatVolumeCell(b.OriginalVolume))
	fmt.Fprintf(out, "  OG/FG:     %s / %s\n", formatMetric(b.OG), formatMetric(b.FG))
	fmt.Fprintf(out, "  ABV:       %s\n", formatABV(b))
	fmt.Fprintf(out, "  pH:        %s\n", formatMetric(b.PH))
	fmt.Fprintf(out, "  Temp:      %s\n", formatMetric(b.Temp))
	if strings.TrimSpace(b.Recipe) != "" {
		fmt.Fprintf(out, "  Recipe:    %s\n", b.Recipe)
	}
	if strings.TrimSpace(b.Notes) != "" {
		fmt.Fprintf(out, "  Notes:     %s\n", b.Notes)
	}
	fmt.Fprintf(out, "  Log entries: %d (see `brewtrack log show`)\n", len(b.Log))
}

func newBrewSetCommand(ctx *commandContext) *cobra.Command {
	var (
		name   string
		stage  string
		recipe string
		notes  string
		og     string
		fg     string
		ph     string
		temp   string
	)

	cmd := &cobra.Command{
		Use:   "set <vessel>",
		Short: "Update fields on the brew in a vessel slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseSlotArg(args[0])
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("stage") && !flags.Changed("recipe") &&
				!flags.Changed("notes") && !flags.Changed("og") && !flags.Changed("fg") &&
				!flags.Changed("ph") && !flags.Changed("temp") {
				return fmt.Errorf("nothing to update; pass at least one field flag")
			}

			// Metric flags stay strings so "0" and bad input are told apart
			// before anything mutates.
			metrics := map[string]*float64{}
			for flagName, raw := range map[string]string{"og": og, "fg": fg, "ph": ph, "temp": temp} {
				if !flags.Changed(flagName) {
					continue
				}
				value, ok := gravity.ParseFloat(raw)
				if !ok {
					return fmt.Errorf("invalid %s %q: expected a decimal number", flagName, raw)
				}
				metrics[flagName] = &value
			}

			return ctx.withManager(func(m *cellar.Manager) error {
				err := m.UpdateBrew(index, func(b *brew.Brew) {
					if flags.Changed("name") {
						b.Name = strings.TrimSpace(name)
					}
					if flags.Changed("stage") {
						b.Stage = strings.TrimSpace(stage)
					}
					if flags.Changed("recipe") {
						b.Recipe = recipe
					}
					if flags.Changed("notes") {
						b.Notes = notes
					}
					if value := metrics["og"]; value != nil {
						b.OG = *value
					}
					if value := metrics["fg"]; value != nil {
						b.FG = *value
					}
					if value := metrics["ph"]; value != nil {
						b.PH = *value
					}
					if value := metrics["temp"]; value != nil {
						b.Temp = *value
					}
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated brew in vessel %d\n", index+1)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Brew name")
	cmd.Flags().StringVar(&stage, "stage", "", "Stage")
	cmd.Flags().StringVar(&recipe, "recipe", "", "Recipe notes")
	cmd.Flags().StringVar(&notes, "notes", "", "Freeform notes")
	cmd.Flags().StringVar(&og, "og", "", "Original gravity")
	cmd.Flags().StringVar(&fg, "fg", "", "Final gravity")
	cmd.Flags().StringVar(&ph, "ph", "", "Measured pH")
	cmd.Flags().StringVar(&temp, "temp", "", "Measured temperature")
	return cmd
}
