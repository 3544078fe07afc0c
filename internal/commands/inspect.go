package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/goseal/internal/container"
)

// NewInspectCommand creates a new cobra command for the inspect subcommand.
// It prints container metadata without decrypting, so no key is required.
func NewInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect containers...",
		Aliases: []string{"info"},
		Short:   "Show container metadata without decrypting",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				cnt, err := container.Read(path)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()

				fmt.Fprintf(out, "%s\n", path)
				fmt.Fprintf(out, "  id:       %s\n", cnt.ID)
				fmt.Fprintf(out, "  original: %s\n", cnt.FullName())
				//nolint:gosec // container sizes are non-negative
				fmt.Fprintf(out, "  size:     %s\n", humanize.IBytes(uint64(max(0, cnt.Size))))
				fmt.Fprintf(out, "  payload:  %s\n", humanize.IBytes(uint64(len(cnt.Payload))))
			}

			return nil
		},
	}
}
