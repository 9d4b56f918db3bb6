package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// RemoveCommentSections drops obvious comment or discussion sections from
// the extracted article fragment, by id/class signal or by ARIA role plus
// a matching aria-label. Grounded on original_source's
// remove_comment_sections.rs.
type RemoveCommentSections struct{}

func (RemoveCommentSections) Name() string { return "RemoveCommentSections" }

func (RemoveCommentSections) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}

	var toDetach []*html.Node
	for _, n := range dom.Descendants(fragment) {
		if !dom.CommentSectionTags[dom.NodeName(n)] {
			continue
		}
		if matchesCommentSignal(n) {
			toDetach = append(toDetach, n)
		}
	}
	for _, n := range toDetach {
		dom.Detach(n)
	}
	return nil
}

func matchesCommentSignal(n *html.Node) bool {
	if id, ok := dom.Attr(n, "id"); ok && dom.CommentSectionPattern.MatchString(id) {
		return true
	}
	if class, ok := dom.Attr(n, "class"); ok && dom.CommentSectionPattern.MatchString(class) {
		return true
	}
	if role, ok := dom.Attr(n, "role"); ok && dom.CommentSectionRoles[role] {
		if label, ok := dom.Attr(n, "aria-label"); ok && dom.CommentSectionPattern.MatchString(label) {
			return true
		}
	}
	return false
}
