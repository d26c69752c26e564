// Package content provides ready-made page sources for folio sessions.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/phanxgames/folio"
)

// ErrEmpty is returned when a source yields no pages.
var ErrEmpty = errors.New("content: no pages")

// MarkdownBook splits a Markdown document into HTML pages. A new page starts
// at every top-level thematic break (---) and every level-1 heading. Level-1
// headings become chapters and level-2 headings become topics of the
// enclosing chapter.
type MarkdownBook struct {
	pages    []string
	chapters []folio.Chapter
}

// NewMarkdownBook parses and renders src. Options are passed to goldmark.
func NewMarkdownBook(src []byte, opts ...goldmark.Option) (*MarkdownBook, error) {
	md := goldmark.New(opts...)
	doc := md.Parser().Parse(text.NewReader(src))

	var top []ast.Node
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		top = append(top, n)
	}

	b := &MarkdownBook{}
	var group []ast.Node
	flush := func() error {
		if len(group) == 0 {
			return nil
		}
		page := ast.NewDocument()
		for _, n := range group {
			doc.RemoveChild(doc, n)
			page.AppendChild(page, n)
		}
		var buf bytes.Buffer
		if err := md.Renderer().Render(&buf, src, page); err != nil {
			return fmt.Errorf("render page %d: %w", len(b.pages)+1, err)
		}
		b.pages = append(b.pages, buf.String())
		group = group[:0]
		return nil
	}

	for _, n := range top {
		switch n := n.(type) {
		case *ast.ThematicBreak:
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		case *ast.Heading:
			switch n.Level {
			case 1:
				if err := flush(); err != nil {
					return nil, err
				}
				b.chapters = append(b.chapters, folio.Chapter{
					Label:     fmt.Sprintf("Chapter %d", len(b.chapters)+1),
					Title:     headingText(n, src),
					StartPage: len(b.pages) + 1,
				})
			case 2:
				if len(b.chapters) > 0 {
					ch := &b.chapters[len(b.chapters)-1]
					ch.Topics = append(ch.Topics, folio.Topic{
						Title: headingText(n, src),
						Page:  len(b.pages) + 1,
					})
				}
			}
		}
		group = append(group, n)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(b.pages) == 0 {
		return nil, ErrEmpty
	}
	return b, nil
}

// PageCount returns the number of pages.
func (b *MarkdownBook) PageCount() int { return len(b.pages) }

// Page returns page n (1-based) as rendered HTML.
func (b *MarkdownBook) Page(n int) (folio.Payload, error) {
	if n < 1 || n > len(b.pages) {
		return folio.Payload{}, fmt.Errorf("page %d out of range [1, %d]", n, len(b.pages))
	}
	return folio.Payload{Kind: folio.PayloadMarkup, Markup: b.pages[n-1]}, nil
}

// Chapters returns the table of contents derived from the headings.
func (b *MarkdownBook) Chapters() []folio.Chapter { return b.chapters }

// headingText flattens the inline text of a heading.
func headingText(h *ast.Heading, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(h, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Text:
			sb.Write(n.Value(src))
			if n.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
