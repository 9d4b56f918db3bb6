package stages

import (
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// EnsureParagraphTrailingNewline appends a trailing newline text node
// inside a <p> whose serialized content already spans multiple lines (most
// often a nested <code> element that NormalizeArticleWhitespace left
// alone), so the closing tag doesn't run directly against preserved
// multi-line content. Grounded on original_source's
// ensure_paragraph_trailing_newline.rs.
type EnsureParagraphTrailingNewline struct{}

func (EnsureParagraphTrailingNewline) Name() string { return "EnsureParagraphTrailingNewline" }

func (EnsureParagraphTrailingNewline) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}
	for _, p := range dom.FindAll(fragment, "p") {
		if !strings.Contains(renderChildren(p), "\n") {
			continue
		}
		if last := p.LastChild; last != nil && last.Type == html.TextNode && strings.HasSuffix(last.Data, "\n") {
			continue
		}
		dom.AppendChild(p, dom.NewText("\n"))
	}
	return nil
}

func renderChildren(n *html.Node) string {
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&buf, c)
	}
	return buf.String()
}
