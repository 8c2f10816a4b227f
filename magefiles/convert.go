package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	samplesDir    = "testdata/samples"
	samplesOutDir = "testdata/samples/tex"
)

// Samples converts the Markdown samples in testdata/samples with the built
// binary, writing .tex files to testdata/samples/tex, and lists the samples
// that produced no output.
func Samples() error {
	mg.Deps(Build)

	files, err := filepath.Glob(filepath.Join(samplesDir, "*.md"))
	if err != nil {
		return fmt.Errorf("listing samples: %w", err)
	}
	if len(files) == 0 {
		fmt.Println("[samples] No Markdown samples found.")
		return nil
	}

	args := append([]string{"batch", "--out-dir", samplesOutDir}, files...)
	runErr := sh.RunV(filepath.Join(binDir, binName), args...)

	missing := unconverted(files, samplesOutDir)
	for _, f := range missing {
		fmt.Printf("[samples] no output for %s\n", f)
	}
	fmt.Printf("[samples] %d of %d samples written to %s\n", len(files)-len(missing), len(files), samplesOutDir)
	return runErr
}

// unconverted returns the Markdown files that have no .tex counterpart in
// outDir.
func unconverted(files []string, outDir string) []string {
	var missing []string
	for _, f := range files {
		out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(f), ".md")+".tex")
		if _, err := os.Stat(out); err != nil {
			missing = append(missing, f)
		}
	}
	return missing
}
