package stages

import (
	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
)

// Language is stage 2: capture the <html lang> hint (§4.2).
type Language struct{}

func (Language) Name() string { return "Language" }

func (Language) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}
	if lang, ok := dom.Attr(root, "lang"); ok {
		ctx.DocumentLang = lang
	}
	return nil
}
