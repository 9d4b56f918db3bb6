package stages

import (
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// NormalizeArticleWhitespace collapses runs of newlines, tabs, and spaces
// in the article fragment's text nodes down to a single space, leaving
// text inside <pre>/<code>/<textarea>/<script>/<style> untouched. It runs
// late, just ahead of serialization. Grounded on original_source's
// normalize_article_whitespace.rs.
type NormalizeArticleWhitespace struct{}

func (NormalizeArticleWhitespace) Name() string { return "NormalizeArticleWhitespace" }

func (NormalizeArticleWhitespace) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}
	walkText(fragment, normalizeTextNode)
	return nil
}

func walkText(n *html.Node, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			fn(c)
		} else if c.Type == html.ElementNode {
			walkText(c, fn)
		}
	}
}

func normalizeTextNode(n *html.Node) {
	if strings.TrimSpace(n.Data) == "" {
		return
	}
	if isInPreservedWhitespaceContext(n) {
		return
	}

	var b strings.Builder
	b.Grow(len(n.Data))
	lastWasSpace := false
	for _, ch := range n.Data {
		switch ch {
		case '\n', '\r', '\t', ' ':
			if !lastWasSpace {
				b.WriteByte(' ')
				lastWasSpace = true
			}
		default:
			b.WriteRune(ch)
			lastWasSpace = false
		}
	}
	n.Data = b.String()
}

func isInPreservedWhitespaceContext(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if dom.WhitespacePreservedTags[dom.NodeName(p)] {
			return true
		}
	}
	return false
}
