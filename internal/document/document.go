// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document splits Markdown sources into front matter and body.
package document

import (
	"bytes"
	"fmt"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/mdtex/pkg/types"
)

type frontMatter struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Date   string `yaml:"date"`
}

// Parse extracts the optional front matter block at the start of source and
// returns the document with the remaining Markdown as its body. A source
// without front matter yields a Document whose Body is the whole input.
func Parse(source []byte) (types.Document, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return types.Document{}, fmt.Errorf("parsing front matter: %w", err)
	}
	return types.Document{
		Title:  meta.Title,
		Author: meta.Author,
		Date:   meta.Date,
		Body:   string(body),
	}, nil
}
