package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// NormalizeArticleRoot is stage 10: rename direct <main> children of the
// fragment root to <div> and demote every <h1> inside the fragment to
// <h2> (§4.6).
type NormalizeArticleRoot struct{}

func (NormalizeArticleRoot) Name() string { return "NormalizeArticleRoot" }

func (NormalizeArticleRoot) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}
	for _, c := range dom.Children(fragment) {
		if dom.NodeName(c) == "main" {
			dom.SetTag(c, "div")
		}
	}
	for _, h1 := range dom.FindAll(fragment, "h1") {
		dom.SetTag(h1, "h2")
	}
	return nil
}

// FlattenSimpleTables is stage 11 (§4.6).
type FlattenSimpleTables struct{}

func (FlattenSimpleTables) Name() string { return "FlattenSimpleTables" }

func (FlattenSimpleTables) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}
	for _, table := range dom.FindAll(fragment, "table") {
		if isSimpleTable(table) {
			flattenTable(table)
		}
	}
	return nil
}

func isSimpleTable(table *html.Node) bool {
	if len(dom.FindAll(table, "th", "col", "colgroup", "caption")) > 0 {
		return false
	}
	trs := dom.FindAll(table, "tr")
	tds := dom.FindAll(table, "td")
	return len(trs) <= 1 && len(tds) == 1
}

var tableWrapperTags = map[string]bool{"tbody": true, "thead": true, "tfoot": true, "tr": true, "td": true}

// singleWrapperChild returns table's sole child element if it is the only
// child node and its tag is a table-wrapper tag, else nil.
func singleWrapperChild(n *html.Node) *html.Node {
	children := dom.Children(n)
	if len(children) != 1 {
		return nil
	}
	if !tableWrapperTags[dom.NodeName(children[0])] {
		return nil
	}
	return children[0]
}

func flattenTable(table *html.Node) {
	for {
		wrapper := singleWrapperChild(table)
		if wrapper == nil {
			break
		}
		for _, c := range dom.AllChildren(wrapper) {
			dom.InsertBefore(table, c, wrapper)
		}
		dom.Detach(wrapper)
	}

	parent := table.Parent
	if parent == nil {
		return
	}
	for _, c := range dom.AllChildren(table) {
		dom.InsertBefore(parent, c, table)
	}
	dom.Detach(table)
}
