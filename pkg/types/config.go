// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultOutTex is the output path used when no --out-tex is given.
const DefaultOutTex = "./output.tex"

// DefaultOutDir is the batch output directory used when no --out-dir is given.
const DefaultOutDir = "tex"

// ConversionConfig holds settings for Markdown-to-LaTeX conversion.
type ConversionConfig struct {
	// OutTex is the destination file for a single conversion (default ./output.tex).
	OutTex string `json:"out_tex" yaml:"out_tex"`

	// OutDir is the destination directory for batch conversion (default tex).
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Standalone wraps the output in a compilable LaTeX document with a
	// preamble built from the front matter.
	Standalone bool `json:"standalone" yaml:"standalone"`

	// Strikethrough emits \sout{...} for ~~text~~ instead of rejecting it.
	Strikethrough bool `json:"strikethrough" yaml:"strikethrough"`

	// Trace logs every parse event at debug level.
	Trace bool `json:"trace" yaml:"trace"`
}
