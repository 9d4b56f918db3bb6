package stages

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/arcdodge/readability/internal/pipeline"
)

// newTestContext parses markup as a full document and returns a Context
// with default options, ready to exercise a single stage in isolation.
func newTestContext(t *testing.T, markup string) *pipeline.Context {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return &pipeline.Context{Doc: doc, Options: pipeline.DefaultOptions()}
}
