package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
)

// RewriteCenterTags renames legacy <center> elements to <div>, the same
// family of legacy-markup normalization as RewriteFontTags. Grounded on
// original_source's rewrite_center_tags.rs.
type RewriteCenterTags struct{}

func (RewriteCenterTags) Name() string { return "RewriteCenterTags" }

func (RewriteCenterTags) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}
	for _, n := range dom.FindAll(root, "center") {
		dom.SetTag(n, "div")
	}
	return nil
}
