package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// NormalizeContainers is stage 8 (§4.4).
type NormalizeContainers struct{}

func (NormalizeContainers) Name() string { return "NormalizeContainers" }

func (NormalizeContainers) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}

	var toParagraph []*html.Node
	for _, div := range dom.FindAll(root, "div") {
		if !dom.HasChildBlockElement(div) {
			toParagraph = append(toParagraph, div)
		}
	}
	for _, div := range toParagraph {
		dom.SetTag(div, "p")
	}

	var toDiv []*html.Node
	for _, n := range dom.Descendants(root) {
		if dom.StructuralWrapperTags[dom.NodeName(n)] && dom.IsElementWithoutContent(n) {
			toDiv = append(toDiv, n)
		}
	}
	for _, n := range toDiv {
		dom.SetTag(n, "div")
	}
	return nil
}
