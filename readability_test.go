package readability

import (
	"strings"
	"testing"
)

func repeatWords(word string, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = word
	}
	return strings.Join(words, " ")
}

func TestParseTrivialArticle(t *testing.T) {
	prose := repeatWords("lorem", 100) // 599 characters incl. spaces
	html := `<html><body><p>` + prose + `</p></body></html>`

	doc, err := New([]byte(html), "", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	article, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(article.Content, `id="readability-page-1"`) {
		t.Errorf("Content = %q, want the readability-page-1 wrapper", article.Content)
	}
	if !strings.Contains(article.Content, "<p>") {
		t.Errorf("Content = %q, want a <p>", article.Content)
	}
	if article.Length != len([]rune(article.TextContent)) {
		t.Errorf("Length = %d, want character count of TextContent (%d)", article.Length, len([]rune(article.TextContent)))
	}
}

func TestParseSeparatorTitle(t *testing.T) {
	body := `<p>` + repeatWords("prose", 60) + `</p><p>` + repeatWords("more", 60) + `</p><p>` + repeatWords("text", 60) + `</p>`
	html := `<html><head><title>An Extra Wordy Article Title - Site Name</title></head><body>` + body + `</body></html>`

	doc, err := New([]byte(html), "", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	article, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if article.Title != "An Extra Wordy Article Title" {
		t.Errorf("Title = %q, want %q", article.Title, "An Extra Wordy Article Title")
	}
}

func TestParseColonTitleReverts(t *testing.T) {
	original := "This category name is quite long for the site: Teaser"
	html := `<html><head><title>` + original + `</title></head><body><h1>Other</h1><p>` + repeatWords("word", 60) + `</p></body></html>`

	doc, err := New([]byte(html), "", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	article, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if article.Title != original {
		t.Errorf("Title = %q, want the original %q", article.Title, original)
	}
}

func TestParseBylineHeuristic(t *testing.T) {
	html := `<html><body>
		<div class="byline">By Jane Doe</div>
		<p>` + repeatWords("content", 60) + `</p>
	</body></html>`

	doc, err := New([]byte(html), "", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	article, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if article.Byline != "By Jane Doe" {
		t.Errorf("Byline = %q, want %q", article.Byline, "By Jane Doe")
	}
}

func TestParseBreakToParagraph(t *testing.T) {
	html := `<html><body><div>foo<br><br>bar and ` + repeatWords("filler", 100) + `</div></body></html>`

	doc, err := New([]byte(html), "", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	article, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(article.Content, "<p>") {
		t.Errorf("Content = %q, want a <p> produced from the <br><br> run", article.Content)
	}
}

func TestParseURIResolution(t *testing.T) {
	html := `<html><body><div><a href="/x"><img src="y.png" srcset="/a.png 1x, b.png 2x"></a>` +
		repeatWords("prose", 100) + `</div></body></html>`

	doc, err := New([]byte(html), "http://fakehost/test/page.html", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	article, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(article.Content, `href="http://fakehost/x"`) {
		t.Errorf("Content = %q, want resolved href", article.Content)
	}
	if !strings.Contains(article.Content, `src="http://fakehost/test/y.png"`) {
		t.Errorf("Content = %q, want resolved src", article.Content)
	}
}

func TestParseElementLimitExceeded(t *testing.T) {
	html := `<html><body><p>a</p><p>b</p><p>c</p></body></html>`

	// Discover the natural element count, then set the limit one below it.
	doc, err := New([]byte(html), "", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	found := doc.ctx.ElementCount()

	opts := DefaultOptions()
	opts.MaxElements = found - 1
	doc2, err := New([]byte(html), "", opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = doc2.Parse()
	limitErr, ok := err.(*ElementLimitExceeded)
	if !ok {
		t.Fatalf("error type = %T, want *ElementLimitExceeded", err)
	}
	if limitErr.Found != found || limitErr.Limit != found-1 {
		t.Errorf("ElementLimitExceeded = %+v, want Found=%d Limit=%d", limitErr, found, found-1)
	}
}

func TestParseMissingArticleContent(t *testing.T) {
	html := `<html><body><script>var x = 1;</script><style>p{color:red}</style></body></html>`

	doc, err := New([]byte(html), "", DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = doc.Parse()
	if _, ok := err.(*MissingArticleContent); !ok {
		t.Fatalf("error type = %T, want *MissingArticleContent", err)
	}
}

func TestNewInvalidBaseURL(t *testing.T) {
	_, err := New([]byte(`<html></html>`), "http://[::1", DefaultOptions())
	if _, ok := err.(*InvalidBaseURL); !ok {
		t.Fatalf("error type = %T, want *InvalidBaseURL", err)
	}
}

func TestParseKeepClassesPreservesAll(t *testing.T) {
	html := `<html><body><div class="foo bar"><p>` + repeatWords("word", 60) + `</p></div></body></html>`

	opts := DefaultOptions()
	opts.KeepClasses = true
	doc, err := New([]byte(html), "", opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	article, err := doc.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(article.Content, "foo") || !strings.Contains(article.Content, "bar") {
		t.Errorf("Content = %q, want original classes preserved when KeepClasses is true", article.Content)
	}
}
