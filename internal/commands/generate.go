package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewGenerateCommand creates a new cobra command for the generate subcommand.
// It prints a fresh random 128-bit key in its uuid string form, the format
// the --key flag expects.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Println(uuid.New().String()) //nolint:forbidigo

			return nil
		},
	}
}
