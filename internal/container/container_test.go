package container_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/goseal/internal/container"
)

// nameCase is a single name-derivation case from the YAML golden file.
type nameCase struct {
	Name          string `yaml:"name"`
	FileName      string `yaml:"fileName"`
	Base          string `yaml:"base"`
	Extension     string `yaml:"extension"`
	ContainerName string `yaml:"containerName"`
}

func loadNameCases(t *testing.T) []nameCase {
	t.Helper()

	data, err := os.ReadFile("testdata/names.yml")
	require.NoError(t, err)

	var cases []nameCase
	require.NoError(t, yaml.Unmarshal(data, &cases))
	require.NotEmpty(t, cases)

	return cases
}

func TestSplitName(t *testing.T) {
	t.Parallel()

	for _, tc := range loadNameCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			name, ext := container.SplitName(tc.FileName)

			assert.Equal(t, tc.Base, name)
			assert.Equal(t, tc.Extension, ext)
			assert.Equal(t, tc.FileName, name+ext, "base + extension must reconstruct the original name")
		})
	}
}

func TestContainer_DerivedNames(t *testing.T) {
	t.Parallel()

	for _, tc := range loadNameCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			cnt, err := container.New(tc.FileName, 0, make([]byte, 16), make([]byte, 16))
			require.NoError(t, err)

			assert.Equal(t, tc.FileName, cnt.FullName())
			assert.Equal(t, tc.ContainerName, cnt.FileName())
		})
	}
}

func TestNew_TimeOrderedIDs(t *testing.T) {
	t.Parallel()

	var prev *container.Container

	for range 100 {
		cnt, err := container.New("file.txt", 0, make([]byte, 16), make([]byte, 16))
		require.NoError(t, err)

		if prev != nil {
			assert.Equal(t, -1, bytes.Compare(prev.ID[:], cnt.ID[:]),
				"IDs must increase monotonically over creation order")
		}

		prev = cnt
	}
}
