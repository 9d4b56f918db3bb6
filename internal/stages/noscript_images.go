package stages

import (
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// UnwrapNoscriptImages replaces a lazy-load placeholder <img> with the real
// image hidden inside its sibling <noscript>, then drops any <img> left
// without a usable source. It must run before RemoveDisallowedNodes strips
// <noscript> elements from the document. Grounded on original_source's
// unwrap_noscript_images.rs.
type UnwrapNoscriptImages struct{}

func (UnwrapNoscriptImages) Name() string { return "UnwrapNoscriptImages" }

func (UnwrapNoscriptImages) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}
	for _, n := range dom.FindAll(root, "noscript") {
		unwrapNoscript(n)
	}
	for _, img := range dom.FindAll(root, "img") {
		if !hasImageSource(img) {
			dom.Detach(img)
		}
	}
	return nil
}

func hasImageSource(n *html.Node) bool {
	for _, a := range n.Attr {
		if dom.Contains(dom.NoscriptSourceAttrs, a.Key) {
			return true
		}
		lower := strings.ToLower(a.Val)
		for _, ext := range dom.ImageExtensions {
			if strings.Contains(lower, ext) {
				return true
			}
		}
	}
	return false
}

func unwrapNoscript(n *html.Node) {
	body := dom.ParseFragment(innerHTML(n))
	if body == nil {
		return
	}
	newImage := singleImageAmong(dom.AllChildren(body))
	if newImage == nil {
		return
	}

	prevSibling := dom.PrevElementSibling(n)
	if prevSibling == nil {
		return
	}
	placeholder := singleImageAmong([]*html.Node{prevSibling})
	if placeholder == nil {
		return
	}

	for _, attr := range dom.NoscriptSourceAttrs {
		dom.RemoveAttr(placeholder, attr)
	}
	for _, a := range newImage.Attr {
		dom.SetAttr(placeholder, a.Key, a.Val)
	}

	if placeholder != prevSibling {
		dom.ReplaceWith(prevSibling, placeholder)
	}
	dom.Detach(n)
}

// singleImageAmong reports the lone <img> reachable from nodes — either one
// of nodes itself or a single descendant — when nodes carry no other
// non-whitespace text, per the "single image" predicate in
// unwrap_noscript_images.rs. It returns nil otherwise.
func singleImageAmong(nodes []*html.Node) *html.Node {
	var found *html.Node
	count := 0
	for _, n := range nodes {
		switch n.Type {
		case html.TextNode:
			if strings.TrimSpace(n.Data) != "" {
				return nil
			}
		case html.ElementNode:
			if strings.TrimSpace(dom.InnerText(n, true)) != "" {
				return nil
			}
			if dom.NodeName(n) == "img" {
				found = n
				count++
			}
			for _, img := range dom.FindAll(n, "img") {
				found = img
				count++
			}
		}
	}
	if count != 1 {
		return nil
	}
	return found
}

// innerHTML returns n's children as raw markup. The parser treats
// <noscript> as a rawtext element (mirroring a browser with scripting
// enabled), so its content usually arrives as one unparsed text node
// holding literal, unescaped markup — that text is taken verbatim rather
// than through html.Render, which would re-escape "<" into "&lt;" and
// defeat the reparse below.
func innerHTML(n *html.Node) string {
	var buf strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			buf.WriteString(c.Data)
		} else {
			_ = html.Render(&buf, c)
		}
	}
	return buf.String()
}
