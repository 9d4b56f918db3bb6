package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// NodeName returns the lower-cased tag name of n, or "" for non-elements.
func NodeName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// SameNode reports whether two nodes are the same pointer — the spec's
// "stable opaque identifier" is realized directly as pointer identity,
// since detach/append/rename never reallocate surviving nodes.
func SameNode(a, b *html.Node) bool {
	return a == b
}

// Sel wraps a single node in a throwaway goquery.Selection so CSS-selector
// queries (Find, etc.) can run against it.
func Sel(n *html.Node) *goquery.Selection {
	if n == nil {
		return &goquery.Selection{}
	}
	return goquery.NewDocumentFromNode(n).Selection
}

// OuterHTML serialises n including itself.
func OuterHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// SetTag renames n in place, preserving attributes and children.
func SetTag(n *html.Node, tag string) {
	if n == nil {
		return
	}
	n.Data = strings.ToLower(tag)
	n.DataAtom = 0
}

// Detach removes n from its parent's child list. A no-op if n has no parent.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Attr returns the value of attribute name on n and whether it was present.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute name to val on n, replacing any existing value.
func SetAttr(n *html.Node, name, val string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: val})
}

// RemoveAttr deletes attribute name from n, if present.
func RemoveAttr(n *html.Node, name string) {
	if n == nil {
		return
	}
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key != name {
			out = append(out, a)
		}
	}
	n.Attr = out
}

// Contains reports whether slice has s as an element (case-sensitive).
func Contains(slice []string, s string) bool {
	for _, v := range slice {
		if v == s {
			return true
		}
	}
	return false
}

// HasAncestorTag walks up to maxDepth ancestors (0 = unbounded) looking for
// tagName. filterFn, if non-nil, must also accept the ancestor.
func HasAncestorTag(n *html.Node, tagName string, maxDepth int, filterFn func(*html.Node) bool) bool {
	if n == nil {
		return false
	}
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		if maxDepth > 0 && depth >= maxDepth {
			return false
		}
		if NodeName(p) == tagName && (filterFn == nil || filterFn(p)) {
			return true
		}
		depth++
	}
	return false
}

// IsElementWithoutContent reports whether n's direct children hold no
// non-whitespace text and no element other than <br>/<hr> — the GLOSSARY
// "empty structural wrapper" predicate.
func IsElementWithoutContent(n *html.Node) bool {
	if n == nil {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		case html.ElementNode:
			tag := strings.ToLower(c.Data)
			if tag != "br" && tag != "hr" {
				return false
			}
		}
	}
	return true
}

// HasSingleTagInsideElement reports whether n has exactly one child element,
// that child's tag equals tag, and no sibling text.
func HasSingleTagInsideElement(n *html.Node, tag string) bool {
	if n == nil {
		return false
	}
	var only *html.Node
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return false
		}
		if c.Type == html.ElementNode {
			count++
			only = c
		}
	}
	return count == 1 && NodeName(only) == tag
}

// HasChildBlockElement reports whether any descendant is a block-level tag.
func HasChildBlockElement(n *html.Node) bool {
	if n == nil {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && BlockTags[strings.ToLower(c.Data)] {
			return true
		}
		if HasChildBlockElement(c) {
			return true
		}
	}
	return false
}

// IsPhrasingContent reports whether node is phrasing content, or is a
// non-phrasing element (A, DEL, INS) all of whose children are phrasing
// content, per the GLOSSARY definition.
func IsPhrasingContent(n *html.Node) bool {
	if n == nil {
		return false
	}
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	tag := strings.ToLower(n.Data)
	if PhrasingTags[tag] {
		return true
	}
	if tag == "a" || tag == "del" || tag == "ins" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !IsPhrasingContent(c) {
				return false
			}
		}
		return true
	}
	return false
}

// IsWhitespaceText reports whether n is a text node holding only whitespace.
func IsWhitespaceText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

// NextNode walks the tree in depth-first pre-order, optionally skipping the
// subtree rooted at n, returning the next node to visit or nil when
// traversal of the whole document is exhausted. Grounded on the teacher's
// getNextNode; callers collect nodes to mutate and apply mutations only
// after the walk completes, or call RemoveAndGetNext to splice mid-walk.
func NextNode(n *html.Node, ignoreSelfAndKids bool) *html.Node {
	if n == nil {
		return nil
	}
	if !ignoreSelfAndKids && n.FirstChild != nil {
		return n.FirstChild
	}
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.NextSibling != nil {
			return cur.NextSibling
		}
	}
	return nil
}

// RemoveAndGetNext detaches n and returns the node that DFS would have
// visited next, so callers can continue an enumerate-then-mutate walk
// without losing their place (§5/§9).
func RemoveAndGetNext(n *html.Node) *html.Node {
	next := NextNode(n, true)
	Detach(n)
	return next
}

// Ancestors returns up to maxDepth ancestors of n, nearest first.
func Ancestors(n *html.Node, maxDepth int) []*html.Node {
	var out []*html.Node
	for p := n.Parent; p != nil && (maxDepth <= 0 || len(out) < maxDepth); p = p.Parent {
		out = append(out, p)
	}
	return out
}

// FirstAncestorWithAttr returns the nearest ancestor (including n itself if
// includeSelf) carrying a non-empty attr, and its value.
func FirstAncestorWithAttr(n *html.Node, attr string, includeSelf bool) (string, bool) {
	cur := n
	if !includeSelf {
		if n == nil {
			return "", false
		}
		cur = n.Parent
	}
	for cur != nil {
		if v, ok := Attr(cur, attr); ok && v != "" {
			return v, true
		}
		cur = cur.Parent
	}
	return "", false
}

// Children returns n's direct element children in document order.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	if n == nil {
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// AllChildren returns every direct child node of n (elements, text nodes,
// comments) in document order, as a stable snapshot safe to range over
// while reparenting children out of n.
func AllChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	if n == nil {
		return out
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Descendants collects every element node under n (n excluded) in
// depth-first pre-order.
func Descendants(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				out = append(out, c)
			}
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return out
}

// FindAll collects every descendant element matching any of tags.
func FindAll(n *html.Node, tags ...string) []*html.Node {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	var out []*html.Node
	for _, d := range Descendants(n) {
		if set[NodeName(d)] {
			out = append(out, d)
		}
	}
	return out
}

// AppendChild appends child to the end of parent's child list, detaching
// child from its current parent first if necessary.
func AppendChild(parent, child *html.Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	parent.AppendChild(child)
}

// InsertBefore inserts newChild immediately before refChild under parent,
// detaching newChild from its current parent first if necessary.
func InsertBefore(parent, newChild, refChild *html.Node) {
	if newChild.Parent != nil {
		newChild.Parent.RemoveChild(newChild)
	}
	parent.InsertBefore(newChild, refChild)
}

// ReplaceWith substitutes replacement for old in old's parent, detaching
// replacement from its current parent first if necessary.
func ReplaceWith(old, replacement *html.Node) {
	parent := old.Parent
	if parent == nil {
		return
	}
	if replacement.Parent != nil {
		replacement.Parent.RemoveChild(replacement)
	}
	parent.InsertBefore(replacement, old)
	parent.RemoveChild(old)
}

// PrevElementSibling returns n's nearest preceding sibling that is an
// element, skipping text and comment nodes, or nil if none exists.
func PrevElementSibling(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.PrevSibling; p != nil; p = p.PrevSibling {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// ParseFragment parses markup as a standalone HTML fragment and returns its
// <body> node, or nil on a parse failure.
func ParseFragment(markup string) *html.Node {
	doc, err := html.Parse(strings.NewReader("<html><body>" + markup + "</body></html>"))
	if err != nil {
		return nil
	}
	var body *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil && body == nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return body
}

// NewElement constructs a detached element node with the given tag.
func NewElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: strings.ToLower(tag)}
}

// NewText constructs a detached text node.
func NewText(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
