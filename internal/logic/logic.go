// Package logic wires the cipher pipeline and the container codec into the
// two file-level operations exposed to the CLI, plus a parallel batch runner.
package logic

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/idelchi/goseal/internal/container"
	"github.com/idelchi/goseal/internal/encryption"
)

const dirPerm = 0o750

// EncryptFile reads sourcePath, runs it through the cipher pipeline and
// writes the resulting container into targetDir, creating the directory if
// missing. It returns the path of the container file.
//
// Re-encrypting the same source produces a new container with a new ID and
// vector; a container sharing the base name is silently overwritten.
func EncryptFile(key uuid.UUID, sourcePath, targetDir string) (string, error) {
	source, err := os.ReadFile(filepath.Clean(sourcePath))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %q", container.ErrNotFound, sourcePath)
		}

		return "", fmt.Errorf("reading source %q: %w", sourcePath, err)
	}

	vector, payload, err := encryption.Encrypt(key, source)
	if err != nil {
		return "", fmt.Errorf("encrypting %q: %w", sourcePath, err)
	}

	cnt, err := container.New(filepath.Base(sourcePath), int64(len(source)), vector, payload)
	if err != nil {
		return "", err
	}

	path, err := container.Write(cnt, targetDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	return path, nil
}

// DecryptFile reads a container from sourcePath, decrypts its payload and
// writes the plaintext to targetDir under the original file name, creating
// the directory if missing. It returns the path of the plaintext file.
func DecryptFile(key uuid.UUID, sourcePath, targetDir string) (string, error) {
	cnt, err := container.Read(sourcePath)
	if err != nil {
		return "", err
	}

	plaintext, err := encryption.Decrypt(key, cnt.Vector, cnt.Payload)
	if err != nil {
		return "", fmt.Errorf("decrypting %q: %w", sourcePath, err)
	}

	if err := os.MkdirAll(targetDir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: creating target directory %q: %v", ErrIO, targetDir, err)
	}

	path := filepath.Join(targetDir, cnt.FullName())

	const ownerReadWrite = 0o600

	if err := os.WriteFile(path, plaintext, ownerReadWrite); err != nil {
		return "", fmt.Errorf("%w: writing plaintext %q: %v", ErrIO, path, err)
	}

	return path, nil
}
