// Package config holds the runtime configuration shared by the CLI commands.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Config is the viper unmarshal target for flags and environment variables.
type Config struct {
	// Key is the 128-bit cipher key in its canonical uuid string form.
	Key string `validate:"required,uuid"`

	// Output is the target directory for containers or decrypted files.
	Output string `validate:"required"`

	// Parallel is the number of files processed concurrently.
	Parallel int `validate:"min=1"`

	// Quiet suppresses non-error output.
	Quiet bool

	// Stats prints a processing summary on completion.
	Stats bool

	// Decrypt switches the batch runner to the reverse pipeline.
	Decrypt bool

	// Files holds the positional arguments (files or directories).
	Files []string `validate:"min=1"`
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}

	return nil
}

// CipherKey parses the key string into its raw 128-bit value.
func (c Config) CipherKey() (uuid.UUID, error) {
	key, err := uuid.Parse(c.Key)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid key format: %w", err)
	}

	return key, nil
}
