// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source turns Markdown text into an ordered stream of parse events.
// The parser is goldmark with the table and strikethrough extensions; its AST
// is walked depth-first and every node is reported as a start/end pair or as
// a leaf event.
package source

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/pdiddy/mdtex/pkg/types"
)

// Goldmark is an event source backed by the goldmark parser. It holds no
// per-document state and can be reused across documents.
type Goldmark struct {
	md goldmark.Markdown
}

// New creates a goldmark event source with tables and strikethrough enabled.
func New() *Goldmark {
	return &Goldmark{
		md: goldmark.New(goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		)),
	}
}

// Walk parses document and calls fn for each event in document order. A
// non-nil error from fn stops the walk and is returned unchanged.
func (g *Goldmark) Walk(document []byte, fn func(types.Event) error) error {
	root := g.md.Parser().Parse(text.NewReader(document))
	w := &walker{source: document, emit: fn}
	return ast.Walk(root, w.visit)
}

// Events parses document and returns all of its events.
func (g *Goldmark) Events(document []byte) ([]types.Event, error) {
	var events []types.Event
	err := g.Walk(document, func(ev types.Event) error {
		events = append(events, ev)
		return nil
	})
	return events, err
}

type walker struct {
	source []byte
	emit   func(types.Event) error
}

func (w *walker) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	var events []types.Event
	status := ast.WalkContinue

	switch node := n.(type) {
	case *ast.Document, *ast.TextBlock:
		// Tight list items hold a TextBlock instead of a Paragraph; neither
		// the document root nor the text block produces events.
		return ast.WalkContinue, nil

	case *ast.Text:
		if !entering {
			return ast.WalkContinue, nil
		}
		value := node.Segment.Value(w.source)
		if !node.IsRaw() {
			value = unescape(value)
		}
		if len(value) > 0 {
			events = append(events, types.Text(string(value)))
		}
		switch {
		case node.HardLineBreak():
			events = append(events, types.Event{Kind: types.EventHardBreak})
		case node.SoftLineBreak():
			events = append(events, types.Event{Kind: types.EventSoftBreak})
		}

	case *ast.String:
		if !entering {
			return ast.WalkContinue, nil
		}
		events = append(events, types.Text(string(node.Value)))

	case *ast.CodeSpan:
		if !entering {
			return ast.WalkContinue, nil
		}
		events = append(events, types.Code(w.codeSpanText(node)))
		status = ast.WalkSkipChildren

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		c := w.construct(n)
		if !entering {
			events = append(events, types.End(c))
			break
		}
		events = append(events, types.Start(c))
		if body := w.blockText(n); body != "" {
			events = append(events, types.Text(body))
		}

	case *ast.AutoLink:
		c := types.Construct{Kind: types.ConstructLink, URL: string(node.URL(w.source))}
		if !entering {
			events = append(events, types.End(c))
			break
		}
		events = append(events, types.Start(c), types.Text(string(node.Label(w.source))))

	default:
		c := w.construct(n)
		if entering {
			events = append(events, types.Start(c))
		} else {
			events = append(events, types.End(c))
		}
	}

	for _, ev := range events {
		if err := w.emit(ev); err != nil {
			return ast.WalkStop, err
		}
	}
	return status, nil
}

// construct maps a container node to its Construct.
func (w *walker) construct(n ast.Node) types.Construct {
	switch node := n.(type) {
	case *ast.Paragraph:
		return types.Construct{Kind: types.ConstructParagraph}
	case *ast.Heading:
		return types.Construct{Kind: types.ConstructHeading, Level: node.Level}
	case *ast.Blockquote:
		return types.Construct{Kind: types.ConstructBlockQuote}
	case *ast.List:
		return types.Construct{Kind: types.ConstructList, Ordered: node.IsOrdered()}
	case *ast.ListItem:
		return types.Construct{Kind: types.ConstructItem}
	case *ast.Emphasis:
		if node.Level == 2 {
			return types.Construct{Kind: types.ConstructStrong}
		}
		return types.Construct{Kind: types.ConstructEmphasis}
	case *ast.Link:
		return types.Construct{
			Kind:  types.ConstructLink,
			URL:   string(node.Destination),
			Title: string(node.Title),
		}
	case *ast.Image:
		return types.Construct{
			Kind:  types.ConstructImage,
			URL:   string(node.Destination),
			Title: string(node.Title),
		}
	case *ast.CodeBlock:
		return types.Construct{Kind: types.ConstructCodeBlock}
	case *ast.FencedCodeBlock:
		c := types.Construct{Kind: types.ConstructCodeBlock, Fenced: true}
		if node.Info != nil {
			c.Info = string(node.Info.Segment.Value(w.source))
		}
		return c
	case *east.Table:
		aligns := make([]types.Alignment, len(node.Alignments))
		for i, a := range node.Alignments {
			aligns[i] = alignment(a)
		}
		return types.Construct{Kind: types.ConstructTable, Alignments: aligns}
	case *east.TableHeader:
		return types.Construct{Kind: types.ConstructTableHead}
	case *east.TableRow:
		return types.Construct{Kind: types.ConstructTableRow}
	case *east.TableCell:
		return types.Construct{Kind: types.ConstructTableCell}
	case *east.Strikethrough:
		return types.Construct{Kind: types.ConstructStrikethrough}
	default:
		return types.Construct{Kind: types.ConstructOther, Description: n.Kind().String()}
	}
}

func alignment(a east.Alignment) types.Alignment {
	switch a {
	case east.AlignLeft:
		return types.AlignLeft
	case east.AlignCenter:
		return types.AlignCenter
	case east.AlignRight:
		return types.AlignRight
	default:
		return types.AlignNone
	}
}

// blockText joins the raw lines of a code block.
func (w *walker) blockText(n ast.Node) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(w.source))
	}
	return b.String()
}

// codeSpanText returns the content of an inline code span. A line ending
// inside the span becomes a single space.
func (w *walker) codeSpanText(n *ast.CodeSpan) string {
	var b bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			value := t.Segment.Value(w.source)
			if bytes.HasSuffix(value, []byte("\n")) {
				b.Write(value[:len(value)-1])
				b.WriteByte(' ')
				continue
			}
			b.Write(value)
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return b.String()
}

// unescape resolves backslash escapes and character references in one
// left-to-right scan. A character produced by an escape is never read as
// the start of a reference, so \&amp; stays &amp;.
func unescape(v []byte) []byte {
	var out bytes.Buffer
	n := 0
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\':
			if i+1 < len(v) && util.IsPunct(v[i+1]) {
				out.Write(v[n:i])
				out.WriteByte(v[i+1])
				i++
				n = i + 1
			}
		case '&':
			if end := referenceEnd(v, i); end > 0 {
				out.Write(v[n:i])
				ref := util.ResolveNumericReferences(v[i:end])
				out.Write(util.ResolveEntityNames(ref))
				i = end - 1
				n = end
			}
		}
	}
	out.Write(v[n:])
	return out.Bytes()
}

// maxReferenceLen bounds the scan for the terminating ';' of a reference.
const maxReferenceLen = 32

// referenceEnd returns the index just past the ';' of a character reference
// starting at v[start], or 0 when v[start:] does not look like one.
func referenceEnd(v []byte, start int) int {
	for j := start + 1; j < len(v) && j-start <= maxReferenceLen; j++ {
		c := v[j]
		switch {
		case c == ';':
			if j == start+1 {
				return 0
			}
			return j + 1
		case c == '#' && j == start+1:
		case util.IsAlphaNumeric(c):
		default:
			return 0
		}
	}
	return 0
}
