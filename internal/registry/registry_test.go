package registry

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suisei-entertainment/sde/internal/errors"
	"github.com/suisei-entertainment/sde/internal/logging"
)

func testLogger() logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = io.Discard
	return logging.NewLogger(cfg)
}

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	desc, err := NewDescriptor(&rawDescriptor{ID: "seed"})
	require.NoError(t, err)
	reg.Register(desc)

	got, exists := reg.Get("seed")
	require.True(t, exists)
	assert.Equal(t, "seed", got.ID)

	_, exists = reg.Get("ghost")
	assert.False(t, exists)
	assert.True(t, reg.Has("seed"))
	assert.Equal(t, 1, reg.Count())
}

func TestRegistryRegisterReplaces(t *testing.T) {
	reg := NewRegistry()

	first, err := NewDescriptor(&rawDescriptor{ID: "seed", Name: "First"})
	require.NoError(t, err)
	second, err := NewDescriptor(&rawDescriptor{ID: "seed", Name: "Second"})
	require.NoError(t, err)

	reg.Register(first)
	reg.Register(second)

	got, _ := reg.Get("seed")
	assert.Equal(t, "Second", got.Name)
	assert.Equal(t, 1, reg.Count())
}

func TestRegistryAllSortedByID(t *testing.T) {
	reg := NewRegistry()

	for _, id := range []string{"zeta", "alpha", "mid"} {
		desc, err := NewDescriptor(&rawDescriptor{ID: id})
		require.NoError(t, err)
		reg.Register(desc)
	}

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "alpha", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "zeta", all[2].ID)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()

	writeComponent(t, dir, "seed.component", `{"id": "seed", "name": "SEED Framework"}`)
	writeComponent(t, dir, "protocol.component", `{"id": "protocol"}`)
	writeComponent(t, dir, "docs.component.yaml", "id: docs\nname: Documentation\n")

	reg, err := LoadDirectory(context.Background(), dir, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Count())
	assert.True(t, reg.Has("seed"))
	assert.True(t, reg.Has("protocol"))
	assert.True(t, reg.Has("docs"))
}

func TestLoadDirectorySkipsMalformedDescriptors(t *testing.T) {
	dir := t.TempDir()

	writeComponent(t, dir, "seed.component", `{"id": "seed"}`)
	writeComponent(t, dir, "broken.component", "{not json")
	writeComponent(t, dir, "anonymous.component", `{"name": "no id"}`)

	reg, err := LoadDirectory(context.Background(), dir, testLogger())
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Count())
	assert.True(t, reg.Has("seed"))
}

func TestLoadDirectoryEmpty(t *testing.T) {
	_, err := LoadDirectory(context.Background(), t.TempDir(), testLogger())
	require.Error(t, err)
	assert.True(t, errors.IsConfigError(err))
}

func TestLoadDirectoryIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	writeComponent(t, dir, "seed.component", `{"id": "seed"}`)
	writeComponent(t, dir, "notes.txt", "not a descriptor")

	reg, err := LoadDirectory(context.Background(), dir, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Count())
}

func writeComponent(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
