package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
)

// RemoveDisallowedNodes is stage 4: detach every script/noscript/style (§4.4).
type RemoveDisallowedNodes struct{}

func (RemoveDisallowedNodes) Name() string { return "RemoveDisallowedNodes" }

func (RemoveDisallowedNodes) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}
	for _, n := range dom.FindAll(root, "script", "noscript", "style") {
		dom.Detach(n)
	}
	return nil
}

// RewriteFontTags is stage 5: rename <font> to <span> (§4.4).
type RewriteFontTags struct{}

func (RewriteFontTags) Name() string { return "RewriteFontTags" }

func (RewriteFontTags) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}
	for _, n := range dom.FindAll(root, "font") {
		dom.SetTag(n, "span")
	}
	return nil
}
