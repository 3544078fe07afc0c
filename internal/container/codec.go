package container

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// document is the external JSON schema of a container. Field names are the
// wire contract: containers written by earlier versions must keep decoding.
// Binary fields are carried as standard base64.
type document struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Size      int64  `json:"size"`
	FullName  string `json:"fullName"`
	FileName  string `json:"fileName"`
	Vector    string `json:"vector"`
	Data      string `json:"data"`
}

const dirPerm = 0o750

// Write serializes the container into targetDir, creating the directory if
// absent, and returns the path of the written file. An existing container
// with the same base name is silently overwritten. The write is not atomic:
// a crash mid-write can leave a truncated file behind.
func Write(c *Container, targetDir string) (string, error) {
	doc := document{
		ID:        c.ID.String(),
		Name:      c.Name,
		Extension: c.Extension,
		Size:      c.Size,
		FullName:  c.FullName(),
		FileName:  c.FileName(),
		Vector:    base64.StdEncoding.EncodeToString(c.Vector),
		Data:      base64.StdEncoding.EncodeToString(c.Payload),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding container: %w", err)
	}

	if err := os.MkdirAll(targetDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating target directory %q: %w", targetDir, err)
	}

	path := filepath.Join(targetDir, c.FileName())

	const ownerReadWrite = 0o600

	if err := os.WriteFile(path, data, ownerReadWrite); err != nil {
		return "", fmt.Errorf("writing container %q: %w", path, err)
	}

	return path, nil
}

// Read deserializes a container from path. It returns ErrNotFound when the
// path does not exist and ErrDecode when the document is malformed or a
// required field is absent.
func Read(path string) (*Container, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}

		return nil, fmt.Errorf("reading container %q: %w", path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return doc.toContainer()
}

// toContainer decodes the binary fields and validates the required ones.
func (doc document) toContainer() (*Container, error) {
	switch {
	case doc.ID == "":
		return nil, fmt.Errorf("%w: missing field %q", ErrDecode, "id")
	case doc.Name == "":
		return nil, fmt.Errorf("%w: missing field %q", ErrDecode, "name")
	case doc.Vector == "":
		return nil, fmt.Errorf("%w: missing field %q", ErrDecode, "vector")
	case doc.Data == "":
		return nil, fmt.Errorf("%w: missing field %q", ErrDecode, "data")
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id: %v", ErrDecode, err)
	}

	vector, err := base64.StdEncoding.DecodeString(doc.Vector)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid vector encoding: %v", ErrDecode, err)
	}

	payload, err := base64.StdEncoding.DecodeString(doc.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid data encoding: %v", ErrDecode, err)
	}

	if len(payload) < len(vector) {
		return nil, fmt.Errorf("%w: payload shorter than vector", ErrDecode)
	}

	return &Container{
		ID:        id,
		Name:      doc.Name,
		Extension: doc.Extension,
		Size:      doc.Size,
		Vector:    vector,
		Payload:   payload,
	}, nil
}
