package readability

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/arcdodge/readability/internal/pipeline"
	"github.com/arcdodge/readability/internal/stages"
)

// Options configures the extraction pipeline (§3 of the Context/Options
// data model). DefaultOptions returns the documented defaults.
type Options = pipeline.Options

// DefaultOptions returns the library's default Options: no element limit,
// a 500-character minimum article length, the top 5 scored candidates
// considered for consensus-ancestor promotion, classes stripped except
// "page", and JSON-LD metadata extraction enabled.
func DefaultOptions() Options {
	return pipeline.DefaultOptions()
}

// Article is the immutable result of a successful Parse (§3).
type Article struct {
	Title         string `json:"title"`
	Byline        string `json:"byline,omitempty"`
	Dir           string `json:"dir,omitempty"`
	Lang          string `json:"lang,omitempty"`
	Content       string `json:"content"`
	TextContent   string `json:"textContent"`
	Length        int    `json:"length"`
	Excerpt       string `json:"excerpt,omitempty"`
	SiteName      string `json:"siteName,omitempty"`
	PublishedTime string `json:"publishedTime,omitempty"`
}

// Readability holds one parsed document ready for extraction. It is
// constructed once per input and Parse is called at most once.
type Readability struct {
	ctx *pipeline.Context
}

// New parses htmlBytes into a DOM immediately and returns a Readability
// ready for Parse. If baseURL is non-empty and fails to parse, it returns
// InvalidBaseURL.
func New(htmlBytes []byte, baseURL string, options Options) (*Readability, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, err
	}

	var parsedBase *url.URL
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, &pipeline.InvalidBaseURL{Raw: baseURL, Err: err}
		}
		parsedBase = u
	}

	return &Readability{
		ctx: &pipeline.Context{
			Doc:     doc,
			Options: options,
			BaseURL: parsedBase,
		},
	}, nil
}

// Parse runs the extraction pipeline to completion and returns the
// resulting Article, or the error of whichever stage failed fatally
// (ElementLimitExceeded or MissingArticleContent).
func (r *Readability) Parse() (*Article, error) {
	if err := buildPipeline().Run(r.ctx); err != nil {
		return nil, err
	}

	markup := r.ctx.TakeArticleMarkup()
	text := plainText(markup)

	lang := r.ctx.BodyLang
	if lang == "" {
		lang = r.ctx.DocumentLang
	}

	return &Article{
		Title:         r.ctx.Metadata.Title,
		Byline:        r.ctx.Metadata.Byline,
		Dir:           r.ctx.ArticleDir,
		Lang:          lang,
		Content:       markup,
		TextContent:   text,
		Length:        len([]rune(text)),
		Excerpt:       r.ctx.Metadata.Excerpt,
		SiteName:      r.ctx.Metadata.SiteName,
		PublishedTime: r.ctx.Metadata.PublishedTime,
	}, nil
}

// buildPipeline assembles the sixteen ordered stages of §4 plus the
// supplemented stages SPEC_FULL.md §4.7 adds (lazy-image/noscript-image
// recovery, legacy-tag rewriting, comment-section removal, and final
// whitespace/formatting touch-ups). UnwrapNoscriptImages must run before
// RemoveDisallowedNodes strips <noscript>; the rest slot in next to the
// stage whose concern they share. It is reconstructed per parse, per the
// "stages as polymorphic values" design note (§9) — none carry state
// across calls.
func buildPipeline() *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Stages: []pipeline.Stage{
			stages.ElementLimit{},
			stages.Language{},
			stages.Metadata{},
			stages.UnwrapNoscriptImages{},
			stages.RemoveDisallowedNodes{},
			stages.RewriteFontTags{},
			stages.RewriteCenterTags{},
			stages.RemoveUnlikelyCandidates{},
			stages.ReplaceBreakSequences{},
			stages.NormalizeContainers{},
			stages.Article{},
			stages.FixLazyImages{},
			stages.NormalizeArticleRoot{},
			stages.FlattenSimpleTables{},
			stages.RemoveNonContentElements{},
			stages.RemoveCommentSections{},
			stages.StripPresentationalAttributes{},
			stages.FixRelativeUris{},
			stages.CleanClassAttributes{},
			stages.NormalizeArticleWhitespace{},
			stages.EnsureParagraphTrailingNewline{},
			stages.EnforceVoidSelfClosing{},
		},
	}
}

// plainText renders markup's text content by reparsing it as a fragment.
// Reparsing (rather than threading text through the pipeline) keeps
// Context's accumulated state limited to what §3 actually lists.
func plainText(markup string) string {
	if markup == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Text())
}
