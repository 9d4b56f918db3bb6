package stages

import (
	"testing"

	"github.com/arcdodge/readability/internal/dom"
)

func TestNormalizeArticleRootDemotesMainAndH1(t *testing.T) {
	ctx := newTestContext(t, `<html><body><main><h1>Title</h1><p>x</p></main></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (NormalizeArticleRoot{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fragment := ctx.ArticleFragment()
	if len(dom.FindAll(fragment, "main")) != 0 {
		t.Errorf("expected <main> to be renamed to <div>")
	}
	if len(dom.FindAll(fragment, "h1")) != 0 {
		t.Errorf("expected <h1> to be demoted to <h2>")
	}
	if len(dom.FindAll(fragment, "h2")) != 1 {
		t.Errorf("expected exactly one <h2>")
	}
}

func TestFlattenSimpleTablesLiftsSingleCell(t *testing.T) {
	ctx := newTestContext(t, `<html><body><table><tbody><tr><td><p>cell content</p></td></tr></tbody></table></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FlattenSimpleTables{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fragment := ctx.ArticleFragment()
	if len(dom.FindAll(fragment, "table")) != 0 {
		t.Errorf("expected the simple table to be flattened away")
	}
	ps := dom.FindAll(fragment, "p")
	if len(ps) != 1 {
		t.Fatalf("expected the cell's <p> to survive, got %d", len(ps))
	}
	if got := dom.InnerText(ps[0], true); got != "cell content" {
		t.Errorf("surviving text = %q, want %q", got, "cell content")
	}
}

func TestFlattenSimpleTablesLeavesComplexTableAlone(t *testing.T) {
	ctx := newTestContext(t, `<html><body><table><tr><th>h</th></tr><tr><td>a</td></tr><tr><td>b</td></tr></table></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FlattenSimpleTables{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dom.FindAll(ctx.ArticleFragment(), "table")) != 1 {
		t.Errorf("expected a table with <th> and multiple cells to remain")
	}
}
