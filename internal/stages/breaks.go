package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// ReplaceBreakSequences is stage 7: collapse runs of <br> into paragraphs
// (§4.4).
type ReplaceBreakSequences struct{}

func (ReplaceBreakSequences) Name() string { return "ReplaceBreakSequences" }

func (ReplaceBreakSequences) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}

	consumed := make(map[*html.Node]bool)
	for _, br := range dom.FindAll(root, "br") {
		if consumed[br] || br.Parent == nil {
			continue
		}
		if dom.NodeName(nextNonWhitespaceSibling(br)) != "br" {
			continue
		}
		replaceBreakChain(br, consumed)
	}
	return nil
}

func nextNonWhitespaceSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if dom.IsWhitespaceText(s) {
			continue
		}
		return s
	}
	return nil
}

// replaceBreakChain implements one chain-start's rewrite: consume the
// leading run of <br>/whitespace siblings, splice a <p> in their place, and
// fold the following phrasing-content run into it.
func replaceBreakChain(start *html.Node, consumed map[*html.Node]bool) {
	parent := start.Parent
	if parent == nil {
		return
	}

	cur := start
	var afterRun *html.Node
	for cur != nil {
		if dom.NodeName(cur) != "br" && !dom.IsWhitespaceText(cur) {
			afterRun = cur
			break
		}
		next := cur.NextSibling
		consumed[cur] = true
		dom.Detach(cur)
		cur = next
	}

	p := dom.NewElement("p")
	if afterRun != nil {
		dom.InsertBefore(parent, p, afterRun)
	} else {
		dom.AppendChild(parent, p)
	}

	cur = afterRun
	for cur != nil {
		if dom.NodeName(cur) == "br" {
			break
		}
		if !dom.IsPhrasingContent(cur) && !dom.IsWhitespaceText(cur) {
			break
		}
		next := cur.NextSibling
		dom.AppendChild(p, cur)
		cur = next
	}

	for p.FirstChild != nil && dom.IsWhitespaceText(p.FirstChild) {
		dom.Detach(p.FirstChild)
	}
	for p.LastChild != nil && dom.IsWhitespaceText(p.LastChild) {
		dom.Detach(p.LastChild)
	}

	if dom.NodeName(parent) == "p" {
		dom.SetTag(parent, "div")
	}
}
