// Package commands provides the command-line interface for the goseal tool.
//
// It implements commands for:
//   - key generation
//   - encryption into containers
//   - decryption of containers
//   - container inspection
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides, e.g. GOSEAL_KEY.
const envPrefix = "GOSEAL"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "goseal [flags] command [flags]",
		Short: "File encryption utility",
		Long: `A utility that compresses and encrypts single files into self-describing
JSON containers, and restores the originals from them.
Provides commands for key generation, encryption, decryption and inspection.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			viper.SetEnvPrefix(envPrefix)
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()

			if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			return nil
		},
	}

	root.PersistentFlags().StringP("key", "k", "", "Cipher key in uuid form (128 bits)")
	root.PersistentFlags().StringP("output", "o", ".", "Target directory for output files")
	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")

	root.AddCommand(
		NewEncryptCommand(),
		NewDecryptCommand(),
		NewGenerateCommand(),
		NewInspectCommand(),
	)

	return root
}

// Execute builds the command tree and runs it.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}
