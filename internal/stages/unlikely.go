package stages

import (
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// RemoveUnlikelyCandidates is stage 6 (§4.4). It enumerates the whole tree
// first and detaches afterward so node identifiers stay stable mid-walk
// (§5/§9).
type RemoveUnlikelyCandidates struct{}

func (RemoveUnlikelyCandidates) Name() string { return "RemoveUnlikelyCandidates" }

func (RemoveUnlikelyCandidates) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}

	var toDetach []*html.Node
	for _, n := range dom.Descendants(root) {
		tag := dom.NodeName(n)
		if tag == "body" || tag == "html" || tag == "head" || tag == "a" {
			continue
		}

		if role, ok := dom.Attr(n, "role"); ok && dom.UnlikelyRoles[strings.ToLower(role)] {
			toDetach = append(toDetach, n)
			continue
		}

		class, _ := dom.Attr(n, "class")
		id, _ := dom.Attr(n, "id")
		signal := class + " " + id
		if dom.Unlikely.MatchString(signal) && !dom.OkMaybe.MatchString(signal) &&
			!dom.HasAncestorTag(n, "table", 0, nil) && !dom.HasAncestorTag(n, "code", 0, nil) {
			toDetach = append(toDetach, n)
			continue
		}

		if dom.StructuralWrapperTags[tag] && dom.IsElementWithoutContent(n) {
			toDetach = append(toDetach, n)
		}
	}

	for _, n := range toDetach {
		dom.Detach(n)
	}
	return nil
}
