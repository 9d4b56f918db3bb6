package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
)

// RemoveNonContentElements is stage 12 (§4.6).
type RemoveNonContentElements struct{}

func (RemoveNonContentElements) Name() string { return "RemoveNonContentElements" }

func (RemoveNonContentElements) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}
	for tag := range dom.NonContentTags {
		for _, n := range dom.FindAll(fragment, tag) {
			dom.Detach(n)
		}
	}
	return nil
}

// StripPresentationalAttributes is stage 13 (§4.6).
type StripPresentationalAttributes struct{}

func (StripPresentationalAttributes) Name() string { return "StripPresentationalAttributes" }

func (StripPresentationalAttributes) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}
	for _, n := range dom.Descendants(fragment) {
		for _, attr := range dom.PresentationalAttrs {
			dom.RemoveAttr(n, attr)
		}
		if dom.SizedTags[dom.NodeName(n)] {
			dom.RemoveAttr(n, "width")
			dom.RemoveAttr(n, "height")
		}
	}
	return nil
}
