// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// ConstructKind identifies a structural element of a Markdown document.
type ConstructKind int

const (
	ConstructOther ConstructKind = iota
	ConstructParagraph
	ConstructHeading
	ConstructBlockQuote
	ConstructList
	ConstructItem
	ConstructEmphasis
	ConstructStrong
	ConstructStrikethrough
	ConstructLink
	ConstructImage
	ConstructTable
	ConstructTableHead
	ConstructTableRow
	ConstructTableCell
	ConstructCodeBlock
)

var constructNames = map[ConstructKind]string{
	ConstructOther:         "Other",
	ConstructParagraph:     "Paragraph",
	ConstructHeading:       "Heading",
	ConstructBlockQuote:    "BlockQuote",
	ConstructList:          "List",
	ConstructItem:          "Item",
	ConstructEmphasis:      "Emphasis",
	ConstructStrong:        "Strong",
	ConstructStrikethrough: "Strikethrough",
	ConstructLink:          "Link",
	ConstructImage:         "Image",
	ConstructTable:         "Table",
	ConstructTableHead:     "TableHead",
	ConstructTableRow:      "TableRow",
	ConstructTableCell:     "TableCell",
	ConstructCodeBlock:     "CodeBlock",
}

func (k ConstructKind) String() string {
	if name, ok := constructNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ConstructKind(%d)", int(k))
}

// Alignment is the declared alignment of a table column.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "None"
	}
}

// Construct is a tagged variant describing one document element. Only the
// fields that belong to Kind are set:
//
//	Heading    Level
//	List       Ordered
//	Link       URL, Title
//	Image      URL, Title
//	Table      Alignments
//	CodeBlock  Fenced, Info
//	Other      Description
type Construct struct {
	Kind        ConstructKind
	Level       int
	Ordered     bool
	URL         string
	Title       string
	Alignments  []Alignment
	Fenced      bool
	Info        string
	Description string
}

// String returns a debug dump of the construct, e.g. Heading(4) or
// Link("https://example.com", "").
func (c Construct) String() string {
	switch c.Kind {
	case ConstructHeading:
		return fmt.Sprintf("Heading(%d)", c.Level)
	case ConstructList:
		if c.Ordered {
			return "List(ordered)"
		}
		return "List(bullet)"
	case ConstructLink, ConstructImage:
		return fmt.Sprintf("%s(%q, %q)", c.Kind, c.URL, c.Title)
	case ConstructTable:
		names := make([]string, len(c.Alignments))
		for i, a := range c.Alignments {
			names[i] = a.String()
		}
		return fmt.Sprintf("Table([%s])", strings.Join(names, ", "))
	case ConstructCodeBlock:
		if c.Fenced {
			return fmt.Sprintf("CodeBlock(fenced %q)", c.Info)
		}
		return "CodeBlock(indented)"
	case ConstructOther:
		return fmt.Sprintf("Other(%s)", c.Description)
	default:
		return c.Kind.String()
	}
}

// EventKind distinguishes start/end pairs from leaf events.
type EventKind int

const (
	EventStart EventKind = iota
	EventEnd
	EventText
	EventCode
	EventSoftBreak
	EventHardBreak
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "Start"
	case EventEnd:
		return "End"
	case EventText:
		return "Text"
	case EventCode:
		return "Code"
	case EventSoftBreak:
		return "SoftBreak"
	case EventHardBreak:
		return "HardBreak"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one notification from the Markdown event source. Start and End
// carry a Construct; Text and Code carry Text; breaks carry nothing.
type Event struct {
	Kind      EventKind
	Construct Construct
	Text      string
}

// Start returns a start event for c.
func Start(c Construct) Event { return Event{Kind: EventStart, Construct: c} }

// End returns an end event for c.
func End(c Construct) Event { return Event{Kind: EventEnd, Construct: c} }

// Text returns a literal text event.
func Text(s string) Event { return Event{Kind: EventText, Text: s} }

// Code returns an inline code event.
func Code(s string) Event { return Event{Kind: EventCode, Text: s} }

// String returns a debug dump of the event, e.g. Start(Heading(1)) or
// Text("hello").
func (e Event) String() string {
	switch e.Kind {
	case EventStart, EventEnd:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Construct)
	case EventText, EventCode:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	default:
		return e.Kind.String()
	}
}
