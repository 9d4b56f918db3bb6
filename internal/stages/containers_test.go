package stages

import (
	"testing"

	"github.com/arcdodge/readability/internal/dom"
)

func TestNormalizeContainersRenamesTextOnlyDivToParagraph(t *testing.T) {
	ctx := newTestContext(t, `<html><body><div>just some text, no block children</div></body></html>`)

	if err := (NormalizeContainers{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := ctx.Body()
	if len(dom.FindAll(body, "p")) != 1 {
		t.Errorf("expected the text-only div to become a <p>")
	}
	if len(dom.FindAll(body, "div")) != 0 {
		t.Errorf("expected no div to remain")
	}
}

func TestNormalizeContainersLeavesBlockHoldingDivAlone(t *testing.T) {
	ctx := newTestContext(t, `<html><body><div><p>already a paragraph</p></div></body></html>`)

	if err := (NormalizeContainers{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := ctx.Body()
	if len(dom.FindAll(body, "div")) != 1 {
		t.Errorf("expected the div (which has a block child) to remain a div")
	}
}

func TestNormalizeContainersRenamesEmptyHeaderToDiv(t *testing.T) {
	ctx := newTestContext(t, `<html><body><header><br></header></body></html>`)

	if err := (NormalizeContainers{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := ctx.Body()
	if len(dom.FindAll(body, "div")) != 1 {
		t.Errorf("expected the empty <header> to be renamed to <div>")
	}
	if len(dom.FindAll(body, "header")) != 0 {
		t.Errorf("expected no <header> to remain")
	}
}
