package stages

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// xpathScriptNodes re-harvests <script type="application/ld+json"> nodes
// via a secondary XPath-based parse of the raw document markup. It is
// used only when the primary goquery-based walk (extractJSONLD) turns up
// no recognised article object, as a guard against the two parsers
// disagreeing on malformed script nesting; htmlquery builds the same
// golang.org/x/net/html node type goquery does, so the result feeds
// straight back into the ordinary JSON-LD decoding path.
func xpathScriptNodes(rawHTML string) []*html.Node {
	doc, err := htmlquery.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}
	return htmlquery.Find(doc, "//script[@type='application/ld+json']")
}

// xpathByline runs a secondary XPath scan for byline-shaped elements, used
// as a fallback when the DOM-walk heuristic (bylineHeuristic) finds
// nothing. It reparses the serialised document and matches rel="author",
// an itemprop containing "author", or a "byline"/"author" class token,
// returning the first non-empty text of at most 99 bytes.
func xpathByline(rawHTML string) string {
	doc, err := htmlquery.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	nodes := htmlquery.Find(doc, `//*[@rel='author' or contains(@itemprop,'author') or `+
		`contains(concat(' ', normalize-space(@class), ' '), ' byline ') or `+
		`contains(concat(' ', normalize-space(@class), ' '), ' author ')]`)
	for _, n := range nodes {
		text := strings.TrimSpace(htmlquery.InnerText(n))
		if text != "" && len(text) <= 99 {
			return text
		}
	}
	return ""
}
