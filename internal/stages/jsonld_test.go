package stages

import "testing"

func TestMetadataJSONLDBeatsMetaTag(t *testing.T) {
	ctx := newTestContext(t, `<html><head>
		<meta name="og:title" content="Meta Title">
		<script type="application/ld+json">
		{"@type": "NewsArticle", "headline": "JSON-LD Title", "author": "Jane Doe"}
		</script>
	</head><body><p>body</p></body></html>`)

	if err := (Metadata{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Metadata.Title != "JSON-LD Title" {
		t.Errorf("Title = %q, want JSON-LD value to win over meta", ctx.Metadata.Title)
	}
	if ctx.Metadata.Byline != "Jane Doe" {
		t.Errorf("Byline = %q, want %q", ctx.Metadata.Byline, "Jane Doe")
	}
}

func TestMetadataJSONLDIgnoredWhenDisabled(t *testing.T) {
	ctx := newTestContext(t, `<html><head>
		<meta name="og:title" content="Meta Title">
		<script type="application/ld+json">
		{"@type": "NewsArticle", "headline": "JSON-LD Title"}
		</script>
	</head><body><p>body</p></body></html>`)
	ctx.Options.UseJSONLD = false

	if err := (Metadata{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Metadata.Title != "Meta Title" {
		t.Errorf("Title = %q, want meta value when JSON-LD disabled", ctx.Metadata.Title)
	}
}

func TestJSONLDWalksGraph(t *testing.T) {
	ctx := newTestContext(t, `<html><head>
		<script type="application/ld+json">
		{"@graph": [{"@type": "WebSite", "name": "Not an article"}, {"@type": "BlogPosting", "headline": "Graph Post"}]}
		</script>
	</head><body><p>body</p></body></html>`)

	if err := (Metadata{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Metadata.Title != "Graph Post" {
		t.Errorf("Title = %q, want the @graph article's headline", ctx.Metadata.Title)
	}
}

func TestJSONLDPublisherNameFallsBackForSiteName(t *testing.T) {
	ctx := newTestContext(t, `<html><head>
		<script type="application/ld+json">
		{"@type": "Article", "headline": "Piece", "publisher": {"name": "Acme Daily"}}
		</script>
	</head><body><p>body</p></body></html>`)

	if err := (Metadata{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Metadata.SiteName != "Acme Daily" {
		t.Errorf("SiteName = %q, want publisher.name fallback %q", ctx.Metadata.SiteName, "Acme Daily")
	}
}

func TestJSONLDStripsCDATAWrapper(t *testing.T) {
	ctx := newTestContext(t, `<html><head>
		<script type="application/ld+json"><![CDATA[
		{"@type": "Article", "headline": "Wrapped"}
		]]></script>
	</head><body><p>body</p></body></html>`)

	if err := (Metadata{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Metadata.Title != "Wrapped" {
		t.Errorf("Title = %q, want %q", ctx.Metadata.Title, "Wrapped")
	}
}
