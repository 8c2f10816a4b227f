// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert drives Markdown-to-LaTeX conversion of files on disk: it
// reads the source, strips front matter, runs the transcoder into a buffered
// output file and reports per-file status.
package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/mdtex/internal/document"
	"github.com/pdiddy/mdtex/internal/latex"
	"github.com/pdiddy/mdtex/pkg/types"
)

// texExt is the extension given to batch output files.
const texExt = ".tex"

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Missing   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Missing + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Render writes the LaTeX translation of doc to w. In standalone mode the
// body is wrapped in a preamble and \end{document}.
func Render(cfg types.ConversionConfig, doc types.Document, w io.Writer) error {
	out := bufio.NewWriter(w)

	if cfg.Standalone {
		if _, err := out.WriteString(latex.Preamble(doc, cfg.Strikethrough)); err != nil {
			return fmt.Errorf("writing preamble: %w", err)
		}
	}

	t := latex.New(out, latex.WithStrikethrough(cfg.Strikethrough))
	if err := t.Convert(doc.Body); err != nil {
		// Keep whatever was converted before the failure.
		out.Flush()
		return err
	}

	if cfg.Standalone {
		if _, err := out.WriteString(latex.Postamble()); err != nil {
			return fmt.Errorf("writing postamble: %w", err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// ConvertFile converts the Markdown file at inPath into the LaTeX file at
// outPath, truncating any existing output. A missing input is reported on w
// and returns ConversionMissing with a nil error. An unsupported construct
// leaves the partial output in place and returns an error wrapping
// latex.ErrUnsupported.
func ConvertFile(cfg types.ConversionConfig, inPath, outPath string, w io.Writer) (types.ConversionStatus, error) {
	if _, err := os.Stat(inPath); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "%s not exist!\n", inPath)
		return types.ConversionMissing, nil
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return types.ConversionFailed, fmt.Errorf("reading %s: %w", inPath, err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return types.ConversionFailed, fmt.Errorf("%s: %w", inPath, err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return types.ConversionFailed, fmt.Errorf("creating %s: %w", outPath, err)
	}

	err = Render(cfg, doc, f)
	if cerr := f.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing %s: %w", outPath, cerr)
	}
	if err != nil {
		return types.ConversionFailed, fmt.Errorf("converting %s: %w", inPath, err)
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", inPath, outPath)
	return types.ConversionDone, nil
}

// ConvertBatch converts each Markdown file into outDir, printing per-file
// status to w and returning a summary. Files are converted one after another
// and a failure does not stop the batch.
func ConvertBatch(cfg types.ConversionConfig, inPaths []string, outDir string, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range inPaths {
		status, err := convertInto(cfg, p, outDir, w)
		switch status {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionMissing:
			result.Missing++
		case types.ConversionFailed:
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d missing, %d failed (total: %d)\n",
		result.Converted, result.Missing, result.Failed, result.Total())
	return result
}

func convertInto(cfg types.ConversionConfig, inPath, outDir string, w io.Writer) (types.ConversionStatus, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return types.ConversionFailed, fmt.Errorf("creating %s: %w", outDir, err)
	}
	return ConvertFile(cfg, inPath, OutputPath(inPath, outDir), w)
}

// OutputPath returns the .tex path in outDir for a Markdown input,
// e.g. notes/intro.md -> tex/intro.tex.
func OutputPath(inPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	return filepath.Join(outDir, base+texExt)
}
