package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"brewtrack/internal/doctor"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment and persisted state files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, result := range doctor.Run(cfg) {
				mark := "ok"
				if !result.Passed {
					mark = "FAIL"
					failed++
				}
				fmt.Fprintf(out, "[%4s] %-20s %s\n", mark, result.Name, result.Detail)
			}
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			fmt.Fprintln(out, "All checks passed")
			return nil
		},
	}
}
