package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// InnerText concatenates a node's descendant text, optionally normalizing
// runs of whitespace to a single space and trimming the ends. Block-level
// descendants get a surrounding space so adjacent block text doesn't run
// together; phrasing content doesn't.
func InnerText(n *html.Node, normalize bool) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			if IsPhrasingContent(c) {
				b.WriteString(InnerText(c, false))
			} else {
				b.WriteString(" ")
				b.WriteString(InnerText(c, false))
				b.WriteString(" ")
			}
		}
	}
	text := b.String()
	if normalize {
		text = Whitespace.ReplaceAllString(text, " ")
		text = strings.TrimSpace(text)
	}
	return text
}

// WordCount counts whitespace-delimited words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CommaCount counts occurrences of any Unicode comma variant in text (§4.5).
func CommaCount(text string) int {
	count := 0
	for _, r := range text {
		for _, c := range CommaVariants {
			if r == c {
				count++
				break
			}
		}
	}
	return count
}

// LinkDensity computes the §4.5 weighted link-text-length ratio: anchors
// whose href starts with "#" count at weight 0.3, all others at 1.0.
func LinkDensity(n *html.Node) float64 {
	text := InnerText(n, true)
	if len(text) == 0 {
		return 0
	}
	var weighted float64
	for _, a := range FindAll(n, "a") {
		href, _ := Attr(a, "href")
		w := 1.0
		if strings.HasPrefix(href, "#") {
			w = 0.3
		}
		weighted += float64(len([]rune(InnerText(a, true)))) * w
	}
	return weighted / float64(len([]rune(text)))
}

// normalizeForCompare applies Unicode NFC normalization and lower-cases,
// used ahead of token-based similarity so combining-mark variants of the
// same letter don't register as different tokens.
func normalizeForCompare(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// tokens splits s into a set of lower-cased, NFC-normalized word tokens.
func tokens(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range Tokenize.Split(normalizeForCompare(s), -1) {
		if tok != "" {
			set[tok] = true
		}
	}
	return set
}

// TitleSimilarity implements the §4.3 JSON-LD title-selection metric:
// 1 − |tokens(candidate) \ tokens(docTitle)| / |tokens(docTitle)|.
func TitleSimilarity(candidate, docTitle string) float64 {
	docTokens := tokens(docTitle)
	if len(docTokens) == 0 {
		return 0
	}
	candTokens := tokens(candidate)
	missing := 0
	for t := range candTokens {
		if !docTokens[t] {
			missing++
		}
	}
	return 1 - float64(missing)/float64(len(docTokens))
}
