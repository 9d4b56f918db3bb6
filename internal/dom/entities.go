package dom

import "golang.org/x/net/html"

// DecodeEntities decodes named and numeric (decimal and hex) HTML character
// references in s. golang.org/x/net/html's tokenizer-grade unescaper already
// replaces invalid or surrogate codepoints with U+FFFD per the HTML5
// numeric-character-reference algorithm, so metadata fields pulled from
// <meta> content, JSON-LD strings, and byline text all go through here
// rather than a hand-rolled regex table.
func DecodeEntities(s string) string {
	if s == "" {
		return s
	}
	return html.UnescapeString(s)
}
