// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionStatus indicates the outcome of converting one Markdown file.
type ConversionStatus string

const (
	ConversionDone    ConversionStatus = "converted"
	ConversionMissing ConversionStatus = "missing"
	ConversionFailed  ConversionStatus = "failed"
)

// Document is a Markdown source split into its front matter and body.
type Document struct {
	// Title is the document title from front matter.
	Title string `json:"title" yaml:"title"`

	// Author is the document author from front matter.
	Author string `json:"author" yaml:"author"`

	// Date is the front matter date, kept as written. Free-form values such
	// as "Spring 2024" are allowed.
	Date string `json:"date" yaml:"date"`

	// Body is the Markdown content after the front matter block.
	Body string `json:"-" yaml:"-"`
}

// HasTitle reports whether the front matter declared a title.
func (d Document) HasTitle() bool {
	return d.Title != ""
}
