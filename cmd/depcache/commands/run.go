package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Restore the configured Gradle caches and check whether they are still valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")

			report, err := c.app.Run(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !report.Enabled {
				_, _ = fmt.Fprintln(out, "dependency cache disabled")
				return nil
			}
			for _, root := range report.Roots {
				_, _ = fmt.Fprintf(out, "cache root %s %s\n", root.ID, root.Location)
			}
			_, _ = fmt.Fprintf(out, "verdict: %s\n", report.Verdict)
			return nil
		},
	}
}
