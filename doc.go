/*
Package readability extracts the main article content from an HTML page,
stripping navigation, ads, and other clutter the way a reader-mode browser
feature does.

Basic usage:

	doc, err := readability.New(htmlBytes, "https://example.com/article", readability.DefaultOptions())
	if err != nil {
		// invalid base URL
	}

	article, err := doc.Parse()
	if err != nil {
		// readability.MissingArticleContent, readability.ElementLimitExceeded, ...
	}

	fmt.Println(article.Title)
	fmt.Println(article.Content)

The extraction runs as an ordered pipeline of stages over a shared parse
context: element-count guarding, language detection, metadata resolution
(JSON-LD, meta tags, byline heuristics), sanitation, the scoring-based
article extraction core, and a final set of post-extraction cleanups
(table flattening, presentational-attribute stripping, relative URI
resolution, class-attribute pruning, and void-element canonicalisation).
*/
package readability
