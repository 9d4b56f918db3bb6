package pipeline

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Metadata accumulates the fields the Metadata stage resolves. All fields
// are optional; an empty string means absent (§3, §4.3).
type Metadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	PublishedTime string
}

// Context is the per-parse bundle owned by the pipeline: the parsed
// Document, the immutable Options, and everything stages accumulate as
// they run (§3 "Context").
type Context struct {
	Doc     *goquery.Document
	Options Options
	BaseURL *url.URL

	Metadata Metadata

	DocumentLang string
	BodyLang     string
	ArticleDir   string

	// articleFragment and articleMarkup are mutually exclusive: setting
	// one clears the other (§3 invariant). The fragment's root, when set,
	// is always a <div id="readability-page-1" class="page"> wrapper.
	articleFragment *html.Node
	articleMarkup   string
}

// Root returns the document's root <html> node, or nil if absent.
func (c *Context) Root() *html.Node {
	if c.Doc == nil || c.Doc.Selection == nil || c.Doc.Nodes == nil {
		return nil
	}
	sel := c.Doc.Find("html").First()
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

// Body returns the document's <body> node, or nil if absent.
func (c *Context) Body() *html.Node {
	sel := c.Doc.Find("body").First()
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

// SetArticleFragment installs the in-tree article fragment and clears any
// previously serialised markup.
func (c *Context) SetArticleFragment(wrapper *html.Node) {
	c.articleFragment = wrapper
	c.articleMarkup = ""
}

// ArticleFragment returns the in-tree fragment wrapper, or nil if the
// article has already been serialised (or extraction hasn't run yet).
func (c *Context) ArticleFragment() *html.Node {
	return c.articleFragment
}

// SetArticleMarkup installs the serialised article form and clears the
// in-tree fragment (EnforceVoidSelfClosing does this as its final act).
func (c *Context) SetArticleMarkup(markup string) {
	c.articleMarkup = markup
	c.articleFragment = nil
}

// TakeArticleMarkup returns the serialised article form, serialising the
// fragment on demand if the pipeline hasn't reached EnforceVoidSelfClosing
// yet (e.g. a caller inspecting intermediate state).
func (c *Context) TakeArticleMarkup() string {
	if c.articleMarkup != "" {
		return c.articleMarkup
	}
	if c.articleFragment == nil {
		return ""
	}
	var buf []byte
	w := &byteWriter{buf: buf}
	_ = html.Render(w, c.articleFragment)
	return string(w.buf)
}

type byteWriter struct{ buf []byte }

func (w *byteWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// ElementCount returns the number of element nodes in the whole document.
func (c *Context) ElementCount() int {
	return c.Doc.Find("*").Length()
}
