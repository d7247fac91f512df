package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesBySuffix(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{
		"Core/core.module.hcl",
		"Engine/engine.module.yaml",
		"Engine/notes.txt",
		".git/stale.module.hcl",
		"UI/Private/ui.module.hcl",
	} {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
	single := filepath.Join(root, "Core/core.module.hcl")

	// --- Act ---
	files, err := FindFilesBySuffix(
		[]string{root, single},
		".module.hcl", ".module.yaml",
	)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "Core/core.module.hcl"),
		filepath.Join(root, "Engine/engine.module.yaml"),
		filepath.Join(root, "UI/Private/ui.module.hcl"),
	}, files)
}

func TestFindFilesBySuffix_BadRoots(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	notes := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(notes, nil, 0o644))

	t.Run("missing root", func(t *testing.T) {
		t.Parallel()
		_, err := FindFilesBySuffix([]string{root, filepath.Join(root, "missing")}, ".module.hcl")
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.ErrorContains(t, err, "missing")
	})

	t.Run("file root without a descriptor suffix", func(t *testing.T) {
		t.Parallel()
		_, err := FindFilesBySuffix([]string{notes}, ".module.hcl", ".module.yaml")
		assert.ErrorContains(t, err, "notes.txt is not a descriptor file")
		assert.ErrorContains(t, err, ".module.hcl, .module.yaml")
	})
}

func TestFindFilesBySuffix_PanicsWithoutSuffix(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { _, _ = FindFilesBySuffix([]string{"."}) })
}
