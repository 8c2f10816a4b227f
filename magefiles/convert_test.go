package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnconverted(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "notes.tex"), []byte("x"), 0o644))

	files := []string{
		filepath.Join(samplesDir, "notes.md"),
		filepath.Join(samplesDir, "broken.md"),
	}
	assert.Equal(t, []string{filepath.Join(samplesDir, "broken.md")}, unconverted(files, outDir))
	assert.Empty(t, unconverted(files[:1], outDir))
}
