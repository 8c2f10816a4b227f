// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mdtex/internal/latex"
	"github.com/pdiddy/mdtex/pkg/types"
)

// writeMarkdown creates a Markdown file in dir and returns its path.
func writeMarkdown(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		missing    bool
		wantStatus types.ConversionStatus
		wantLog    string
		wantOut    string
		wantErr    bool
	}{
		{
			name:       "successful conversion",
			content:    "# Title\n\nContent here.\n",
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
			wantOut:    "\\section{Title}\nContent here.\n\n",
		},
		{
			name:       "missing input is not an error",
			missing:    true,
			wantStatus: types.ConversionMissing,
			wantLog:    "not exist!",
		},
		{
			name:       "unsupported construct keeps partial output",
			content:    "# Title\n\n![img](a.png)\n",
			wantStatus: types.ConversionFailed,
			wantOut:    "\\section{Title}\n",
			wantErr:    true,
		},
		{
			name:       "front matter is stripped",
			content:    "---\ntitle: Notes\n---\nhello\n",
			wantStatus: types.ConversionDone,
			wantLog:    "converted:",
			wantOut:    "hello\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			inPath := filepath.Join(dir, "doc.md")
			if !tt.missing {
				writeMarkdown(t, dir, "doc.md", tt.content)
			}
			outPath := filepath.Join(dir, "doc.tex")

			var log bytes.Buffer
			status, err := ConvertFile(types.ConversionConfig{}, inPath, outPath, &log)

			assert.Equal(t, tt.wantStatus, status)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, latex.ErrUnsupported)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, log.String(), tt.wantLog)

			if tt.missing {
				_, statErr := os.Stat(outPath)
				assert.True(t, os.IsNotExist(statErr), "no output expected for a missing input")
				return
			}
			assert.Equal(t, tt.wantOut, readFile(t, outPath))
		})
	}
}

func TestConvertFile_TruncatesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := writeMarkdown(t, dir, "doc.md", "hello")
	outPath := filepath.Join(dir, "doc.tex")
	require.NoError(t, os.WriteFile(outPath, []byte(strings.Repeat("stale ", 100)), 0o644))

	var log bytes.Buffer
	_, err := ConvertFile(types.ConversionConfig{}, inPath, outPath, &log)
	require.NoError(t, err)
	assert.Equal(t, "hello\n\n", readFile(t, outPath))
}

func TestConvertFile_Standalone(t *testing.T) {
	dir := t.TempDir()
	inPath := writeMarkdown(t, dir, "doc.md", "---\ntitle: Notes\nauthor: A. Writer\n---\n~~old~~ **new**\n")
	outPath := filepath.Join(dir, "doc.tex")

	cfg := types.ConversionConfig{Standalone: true, Strikethrough: true}
	var log bytes.Buffer
	status, err := ConvertFile(cfg, inPath, outPath, &log)
	require.NoError(t, err)
	assert.Equal(t, types.ConversionDone, status)

	out := readFile(t, outPath)
	assert.True(t, strings.HasPrefix(out, "\\documentclass{article}\n"))
	assert.Contains(t, out, "\\title{Notes}\n")
	assert.Contains(t, out, "\\author{A. Writer}\n")
	assert.Contains(t, out, "\\usepackage[normalem]{ulem}\n")
	assert.Contains(t, out, "\\sout{old} \\textbf{new}\n\n")
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}

func TestConvertFile_FreeFormDate(t *testing.T) {
	dir := t.TempDir()
	inPath := writeMarkdown(t, dir, "doc.md", "---\ntitle: Notes\ndate: Spring 2024\n---\nhello\n")
	outPath := filepath.Join(dir, "doc.tex")

	var log bytes.Buffer
	status, err := ConvertFile(types.ConversionConfig{Standalone: true}, inPath, outPath, &log)
	require.NoError(t, err)
	assert.Equal(t, types.ConversionDone, status)

	out := readFile(t, outPath)
	assert.Contains(t, out, "\\date{Spring 2024}\n")
	assert.Contains(t, out, "hello\n\n")
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	err := Render(types.ConversionConfig{}, types.Document{Body: "- a\n- b"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "\\begin{itemize}\n\\item a\n\\item b\n\\end{itemize}\n", out.String())
}

func TestConvertBatch(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "tex")

	good := writeMarkdown(t, srcDir, "a.md", "# Paper A")
	bad := writeMarkdown(t, srcDir, "b.md", "*emphasis is unsupported*")
	missing := filepath.Join(srcDir, "c.md")

	var log bytes.Buffer
	result := ConvertBatch(types.ConversionConfig{}, []string{good, bad, missing}, outDir, &log)

	assert.Equal(t, 1, result.Converted)
	assert.Equal(t, 1, result.Missing)
	assert.Equal(t, 1, result.Failed)
	assert.True(t, result.HasFailures())
	assert.Equal(t, 3, result.Total())

	assert.Equal(t, "\\section{Paper A}\n", readFile(t, filepath.Join(outDir, "a.tex")))

	output := log.String()
	assert.Contains(t, output, "failed:  "+bad)
	assert.Contains(t, output, "Batch summary: 1 converted, 1 missing, 1 failed (total: 3)")
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("tex", "intro.tex"), OutputPath(filepath.Join("notes", "intro.md"), "tex"))
	assert.Equal(t, filepath.Join("out", "README.tex"), OutputPath("README", "out"))
}
