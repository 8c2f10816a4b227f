// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"strings"

	"github.com/pdiddy/mdtex/pkg/types"
)

// Preamble returns the header of a standalone document: class, the packages
// the transcoder's output relies on, title metadata and \begin{document}.
// ulem is only loaded when strikethrough output is enabled.
func Preamble(doc types.Document, strikethrough bool) string {
	var b strings.Builder
	b.WriteString("\\documentclass{article}\n")
	b.WriteString("\\usepackage{hyperref}\n")
	b.WriteString("\\usepackage{listings}\n")
	if strikethrough {
		b.WriteString("\\usepackage[normalem]{ulem}\n")
	}
	if doc.HasTitle() {
		b.WriteString("\\title{" + doc.Title + "}\n")
	}
	if doc.Author != "" {
		b.WriteString("\\author{" + doc.Author + "}\n")
	}
	if doc.Date != "" {
		b.WriteString("\\date{" + doc.Date + "}\n")
	}
	b.WriteString("\n\\begin{document}\n")
	if doc.HasTitle() {
		b.WriteString("\\maketitle\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Postamble closes a document opened with Preamble.
func Postamble() string {
	return "\\end{document}\n"
}
