package stages

import (
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
)

// CleanClassAttributes is stage 15 (§4.6). Id attributes are left alone:
// the only id values the pipeline assigns are the wrapper's own
// "readability-page-1", which this stage has no reason to touch.
type CleanClassAttributes struct{}

func (CleanClassAttributes) Name() string { return "CleanClassAttributes" }

func (CleanClassAttributes) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil || ctx.Options.KeepClasses {
		return nil
	}
	preserved := make(map[string]bool, len(ctx.Options.PreservedClasses))
	for _, c := range ctx.Options.PreservedClasses {
		preserved[c] = true
	}

	nodes := append(dom.Descendants(fragment), fragment)
	for _, n := range nodes {
		class, ok := dom.Attr(n, "class")
		if !ok {
			continue
		}
		var kept []string
		for _, token := range strings.Fields(class) {
			if preserved[token] {
				kept = append(kept, token)
			}
		}
		if len(kept) == 0 {
			dom.RemoveAttr(n, "class")
		} else {
			dom.SetAttr(n, "class", strings.Join(kept, " "))
		}
	}
	return nil
}
