package commands

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/depcache/internal/core/domain"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint [dirs...]",
		Short: "Print the dependency files checksum of Gradle projects",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			depth, _ := cmd.Flags().GetInt("depth")
			if depth < 0 {
				depth = domain.UnlimitedDepth
			}
			showFiles, _ := cmd.Flags().GetBool("files")

			results, err := c.app.Fingerprint(cmd.Context(), args, depth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				_, _ = fmt.Fprintf(out, "%s  %s\n", r.Checksum, r.Dir)
				if !showFiles {
					continue
				}
				for _, path := range slices.Sorted(maps.Keys(r.Files)) {
					_, _ = fmt.Fprintf(out, "  %s  %s\n", r.Files[path], path)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntP("depth", "d", -1, "Directory levels to search, negative for unlimited")
	cmd.Flags().Bool("files", false, "List the digest of every dependency file")
	return cmd
}
