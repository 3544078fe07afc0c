package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/goseal/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decrypt [flags] containers...",
		Aliases: []string{"dec"},
		Short:   "Restore files from containers",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := unmarshalConfig(args, true)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}
}
