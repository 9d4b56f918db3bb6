package stages

import (
	"regexp"
	"strings"

	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

var (
	brTag  = regexp.MustCompile(`<br\s*/?>`)
	imgTag = regexp.MustCompile(`<img([^>]*?)\s*/?>`)
)

// EnforceVoidSelfClosing is stage 16 (§4.6): serialise the fragment and
// canonicalise void elements to self-closed form, then clear the in-tree
// representation.
type EnforceVoidSelfClosing struct{}

func (EnforceVoidSelfClosing) Name() string { return "EnforceVoidSelfClosing" }

func (EnforceVoidSelfClosing) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}

	var buf strings.Builder
	if err := html.Render(&buf, fragment); err != nil {
		return nil
	}
	markup := buf.String()
	markup = brTag.ReplaceAllString(markup, "<br />")
	markup = imgTag.ReplaceAllString(markup, "<img$1 />")

	ctx.SetArticleMarkup(markup)
	return nil
}
