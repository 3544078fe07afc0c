// Package container defines the on-disk record for an encrypted file and its
// metadata, and the codec translating it to and from its JSON document form.
package container

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Suffix is appended to the base name of every serialized container,
// regardless of the original file extension.
const Suffix = ".encrypted.json"

// Container is the persisted unit: the encrypted payload of a single source
// file plus the metadata needed to reconstruct it.
//
// The initialization vector is stored twice: as the Vector field and as the
// first len(Vector) bytes of Payload. The duplication is part of the wire
// format and is preserved on write; Decrypt checks the two copies agree.
type Container struct {
	// ID is assigned once at construction and never mutated. UUIDv7 embeds
	// a millisecond timestamp, so IDs are time-ordered over creation order.
	ID uuid.UUID

	// Name and Extension are split from the original file name at the last
	// dot; Name + Extension reconstructs it. Extension keeps the leading dot.
	Name      string
	Extension string

	// Size is the plaintext byte length before compression and encryption.
	// Informational only: decompression determines the actual output length.
	Size int64

	// Vector is the random initialization vector generated for this container.
	Vector []byte

	// Payload is the vector followed by the compressed-then-encrypted body.
	Payload []byte
}

// New constructs a container for the given original file name, assigning a
// fresh time-ordered ID.
func New(fileName string, size int64, vector, payload []byte) (*Container, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating container id: %w", err)
	}

	name, ext := SplitName(fileName)

	return &Container{
		ID:        id,
		Name:      name,
		Extension: ext,
		Size:      size,
		Vector:    vector,
		Payload:   payload,
	}, nil
}

// SplitName splits a file name into base name and extension at the last dot.
// Names with no extension, or consisting only of an extension (".gitignore"),
// are treated as all base name.
func SplitName(fileName string) (name, ext string) {
	ext = filepath.Ext(fileName)
	name = strings.TrimSuffix(fileName, ext)

	if name == "" {
		return fileName, ""
	}

	return name, ext
}

// FullName returns the original file name (Name + Extension).
func (c *Container) FullName() string {
	return c.Name + c.Extension
}

// FileName returns the name the serialized container is stored under.
func (c *Container) FileName() string {
	return c.Name + Suffix
}
