package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/goseal/internal/commands"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := commands.NewRootCommand("test")

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Subset(t, names, []string{"encrypt", "decrypt", "generate", "inspect"})
}

func TestEncryptDecrypt_EndToEnd(t *testing.T) {
	key := uuid.New().String()
	dir := t.TempDir()
	content := []byte("command level round trip")

	source := filepath.Join(dir, "report.v2.txt")
	require.NoError(t, os.WriteFile(source, content, 0o600))

	vault := filepath.Join(dir, "vault")

	root := commands.NewRootCommand("test")
	root.SetArgs([]string{"encrypt", "--quiet", "-k", key, "-o", vault, source})
	require.NoError(t, root.Execute())

	containerPath := filepath.Join(vault, "report.v2.encrypted.json")
	require.FileExists(t, containerPath)

	restored := filepath.Join(dir, "restored")

	root = commands.NewRootCommand("test")
	root.SetArgs([]string{"decrypt", "--quiet", "-k", key, "-o", restored, containerPath})
	require.NoError(t, root.Execute())

	got, err := os.ReadFile(filepath.Join(restored, "report.v2.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestInspect_PrintsMetadata(t *testing.T) {
	key := uuid.New().String()
	dir := t.TempDir()

	source := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(source, []byte("metadata please"), 0o600))

	vault := filepath.Join(dir, "vault")

	root := commands.NewRootCommand("test")
	root.SetArgs([]string{"encrypt", "--quiet", "-k", key, "-o", vault, source})
	require.NoError(t, root.Execute())

	var out bytes.Buffer

	root = commands.NewRootCommand("test")
	root.SetOut(&out)
	root.SetArgs([]string{"inspect", filepath.Join(vault, "note.encrypted.json")})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "original: note.txt")
}

func TestEncrypt_RejectsMalformedKey(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0o600))

	root := commands.NewRootCommand("test")
	root.SetArgs([]string{"encrypt", "-k", "not-a-uuid", source})

	require.Error(t, root.Execute())
}
