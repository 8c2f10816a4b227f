// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex transcodes a stream of Markdown parse events into LaTeX.
//
// The mapping is a flat table from construct to the markup written when the
// construct opens and when it closes. The only state is the column total and
// column cursor of the table being written, which decide where the " & "
// separators go. The first construct without a mapping stops the conversion
// with an *UnsupportedError.
package latex

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/mdtex/internal/source"
	"github.com/pdiddy/mdtex/pkg/types"
)

// EventSource produces the parse events of a Markdown document in order.
// Returning an error from fn stops the walk.
type EventSource interface {
	Walk(document []byte, fn func(types.Event) error) error
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithSource replaces the default goldmark event source.
func WithSource(s EventSource) Option {
	return func(t *Transcoder) { t.source = s }
}

// WithStrikethrough makes ~~text~~ render as \sout{text}. Without it
// strikethrough is rejected like any other unsupported construct.
func WithStrikethrough(enabled bool) Option {
	return func(t *Transcoder) { t.strikethrough = enabled }
}

// WithLogger sets the logger used to trace events.
func WithLogger(l *zap.Logger) Option {
	return func(t *Transcoder) { t.log = l }
}

// Transcoder writes the LaTeX translation of Markdown documents to a sink.
// A Transcoder is not safe for concurrent use.
type Transcoder struct {
	out           *bufio.Writer
	source        EventSource
	strikethrough bool
	log           *zap.Logger

	// total is the column count of the open table, 0 outside tables.
	total int
	// cursor counts the cells closed so far in the current row.
	cursor int
}

// New creates a Transcoder writing to w. Output is buffered and flushed at
// the end of every Convert call.
func New(w io.Writer, opts ...Option) *Transcoder {
	t := &Transcoder{
		out:    bufio.NewWriter(w),
		source: source.New(),
		log:    Logger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Convert parses document and writes its LaTeX translation. It returns an
// *UnsupportedError for the first construct with no mapping, or the first
// write error. Output produced before a failure stays in the sink.
func (t *Transcoder) Convert(document string) error {
	t.total, t.cursor = 0, 0

	err := t.source.Walk([]byte(document), t.handle)
	if ferr := t.out.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("flushing output: %w", ferr)
	}
	return err
}

func (t *Transcoder) handle(ev types.Event) error {
	t.log.Debug("event", zap.Stringer("event", ev))

	switch ev.Kind {
	case types.EventStart:
		return t.open(ev)
	case types.EventEnd:
		return t.close(ev)
	case types.EventText:
		return t.write(ev.Text)
	case types.EventCode:
		return t.write(`\lstinline[]$` + ev.Text + `$`)
	default:
		return t.reject(ev)
	}
}

func (t *Transcoder) open(ev types.Event) error {
	c := ev.Construct
	switch c.Kind {
	case types.ConstructParagraph, types.ConstructBlockQuote, types.ConstructTableCell:
		return nil
	case types.ConstructHeading:
		switch c.Level {
		case 1:
			return t.write(`\section{`)
		case 2, 3:
			return t.write(`\subsection{`)
		}
		return t.reject(ev)
	case types.ConstructList:
		return t.write("\\begin{itemize}\n")
	case types.ConstructItem:
		return t.write(`\item `)
	case types.ConstructStrong:
		return t.write(`\textbf{`)
	case types.ConstructStrikethrough:
		if !t.strikethrough {
			return t.reject(ev)
		}
		return t.write(`\sout{`)
	case types.ConstructLink:
		return t.write(`\href{` + c.URL + `}{` + c.Title + `}`)
	case types.ConstructTable:
		t.total = len(c.Alignments)
		t.cursor = 0
		return t.write("\\begin{table}[]\n\\begin{tabular}{" + ColumnSpec(c.Alignments) + "}\n")
	case types.ConstructTableHead:
		t.cursor = 0
		return nil
	case types.ConstructTableRow:
		t.cursor = 0
		return t.write(" \\\\\n")
	case types.ConstructCodeBlock:
		return t.write("\\begin{lstlisting}\n")
	default:
		return t.reject(ev)
	}
}

func (t *Transcoder) close(ev types.Event) error {
	c := ev.Construct
	switch c.Kind {
	case types.ConstructBlockQuote, types.ConstructLink, types.ConstructTableHead, types.ConstructTableRow:
		return nil
	case types.ConstructParagraph:
		return t.write("\n\n")
	case types.ConstructHeading:
		if c.Level < 1 || c.Level > 3 {
			return t.reject(ev)
		}
		return t.write("}\n")
	case types.ConstructList:
		return t.write("\\end{itemize}\n")
	case types.ConstructItem:
		return t.write("\n")
	case types.ConstructStrong:
		return t.write("}")
	case types.ConstructStrikethrough:
		if !t.strikethrough {
			return t.reject(ev)
		}
		return t.write("}")
	case types.ConstructTable:
		t.total = 0
		return t.write("\n\\end{tabular}\n\\end{table}\n")
	case types.ConstructTableCell:
		t.cursor++
		if t.cursor < t.total {
			return t.write(" & ")
		}
		return nil
	case types.ConstructCodeBlock:
		return t.write("\\end{lstlisting}\n")
	default:
		return t.reject(ev)
	}
}

func (t *Transcoder) reject(ev types.Event) error {
	t.log.Warn("unsupported construct", zap.Stringer("event", ev))
	return unsupported(ev)
}

func (t *Transcoder) write(s string) error {
	if _, err := t.out.WriteString(s); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ColumnSpec returns the tabular column specification for a table's
// alignments: l for left or unaligned, c for center, r for right.
func ColumnSpec(aligns []types.Alignment) string {
	var b strings.Builder
	for _, a := range aligns {
		switch a {
		case types.AlignCenter:
			b.WriteByte('c')
		case types.AlignRight:
			b.WriteByte('r')
		default:
			b.WriteByte('l')
		}
	}
	return b.String()
}
