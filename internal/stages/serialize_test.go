package stages

import (
	"strings"
	"testing"
)

func TestEnforceVoidSelfClosingRewritesBrAndImg(t *testing.T) {
	ctx := newTestContext(t, `<html><body><p>a<br>b</p><img src="x.png"></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (EnforceVoidSelfClosing{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	markup := ctx.TakeArticleMarkup()
	if !strings.Contains(markup, "<br/>") && !strings.Contains(markup, "<br />") {
		t.Errorf("markup = %q, want a self-closed <br>", markup)
	}
	if !strings.Contains(markup, "/>") {
		t.Errorf("markup = %q, want a self-closed <img>", markup)
	}
	if ctx.ArticleFragment() != nil {
		t.Errorf("expected the in-tree fragment to be cleared after serialization")
	}
}

func TestEnforceVoidSelfClosingNoOpWithoutFragment(t *testing.T) {
	ctx := newTestContext(t, `<html><body><p>x</p></body></html>`)
	if err := (EnforceVoidSelfClosing{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.TakeArticleMarkup() != "" {
		t.Errorf("expected no markup when there was never a fragment")
	}
}
