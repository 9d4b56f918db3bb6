package stages

import (
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

var (
	titleKeys = []string{"dc:title", "dcterm:title", "dcterms:title", "og:title", "twitter:title", "title"}
	bylineKeys = []string{
		"dc:creator", "dcterm:creator", "dcterms:creator", "dc:author",
		"author", "parsely:author", "og:article:author",
	}
	excerptKeys = []string{
		"dc:description", "dcterm:description", "dcterms:description",
		"og:description", "description", "twitter:description",
	}
	siteNameKeys      = []string{"og:site_name", "parsely:site_name", "parsely:site"}
	publishedTimeKeys = []string{"article:published_time", "parsely:pub-date", "parsely:publish_date", "publish_date"}
)

// Metadata is stage 3: resolve title, byline, excerpt, site name, and
// published time from JSON-LD, <meta> tags, the document <title>, and a
// byline heuristic, in that priority order (§4.3).
type Metadata struct{}

func (Metadata) Name() string { return "Metadata" }

func (Metadata) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	if root == nil {
		return nil
	}

	docTitle := documentTitleText(root)
	metaIndex := indexMetaTags(root)

	var jsonldTitle, jsonldByline, jsonldExcerpt, jsonldSiteName, jsonldPublished string
	if ctx.Options.UseJSONLD {
		jsonldTitle, jsonldByline, jsonldExcerpt, jsonldSiteName, jsonldPublished = extractJSONLD(root, docTitle)
		if jsonldTitle == "" && jsonldByline == "" && jsonldExcerpt == "" && jsonldSiteName == "" && jsonldPublished == "" {
			if scripts := xpathScriptNodes(dom.OuterHTML(root)); len(scripts) > 0 {
				jsonldTitle, jsonldByline, jsonldExcerpt, jsonldSiteName, jsonldPublished = extractJSONLDFromScripts(scripts, docTitle)
			}
		}
	}

	metaTitle := resolveMetaField(metaIndex, titleKeys)
	metaByline := resolveMetaField(metaIndex, bylineKeys)
	metaExcerpt := resolveMetaField(metaIndex, excerptKeys)
	metaSiteName := resolveMetaField(metaIndex, siteNameKeys)
	metaPublished := resolveMetaField(metaIndex, publishedTimeKeys)

	title := firstNonEmpty(jsonldTitle, metaTitle)
	if title == "" {
		title = postProcessTitle(docTitle, h1Texts(root))
	}

	byline := firstNonEmpty(jsonldByline, metaByline)
	if byline == "" {
		byline = bylineHeuristic(root)
	}
	if byline == "" {
		byline = xpathByline(dom.OuterHTML(root))
	}

	ctx.Metadata.Title = dom.DecodeEntities(title)
	ctx.Metadata.Byline = dom.DecodeEntities(byline)
	ctx.Metadata.Excerpt = dom.DecodeEntities(firstNonEmpty(jsonldExcerpt, metaExcerpt))
	ctx.Metadata.SiteName = dom.DecodeEntities(firstNonEmpty(jsonldSiteName, metaSiteName))
	ctx.Metadata.PublishedTime = dom.DecodeEntities(firstNonEmpty(jsonldPublished, metaPublished))
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func documentTitleText(root *html.Node) string {
	titles := dom.FindAll(root, "title")
	if len(titles) == 0 {
		return ""
	}
	return strings.TrimSpace(dom.InnerText(titles[0], true))
}

func h1Texts(root *html.Node) []string {
	var out []string
	for _, h1 := range dom.FindAll(root, "h1") {
		out = append(out, strings.TrimSpace(dom.InnerText(h1, true)))
	}
	return out
}

// indexMetaTags builds the normalised name/property -> first non-empty
// content index described by §4.3 item 2.
func indexMetaTags(root *html.Node) map[string]string {
	index := make(map[string]string)
	for _, meta := range dom.FindAll(root, "meta") {
		content, ok := dom.Attr(meta, "content")
		content = strings.TrimSpace(content)
		if !ok || content == "" {
			continue
		}
		for _, attr := range []string{"name", "property"} {
			raw, ok := dom.Attr(meta, attr)
			if !ok {
				continue
			}
			for _, key := range strings.Fields(raw) {
				key = normalizeMetaKey(key)
				if key == "" {
					continue
				}
				if _, exists := index[key]; !exists {
					index[key] = content
				}
			}
		}
	}
	return index
}

func normalizeMetaKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(key, ".", ":")
}

func resolveMetaField(index map[string]string, keys []string) string {
	for _, key := range keys {
		if v, ok := index[key]; ok && v != "" {
			return v
		}
	}
	return ""
}

// postProcessTitle implements §4.3.1's document-title cleanup.
func postProcessTitle(original string, h1s []string) string {
	title := original
	curTitle := title

	switch {
	case dom.Separator.MatchString(title):
		curTitle = dom.SeparatorTrimLast.ReplaceAllString(title, "$1")
		curTitle = strings.TrimSpace(curTitle)
		if wordCount(curTitle) < 3 {
			curTitle = strings.TrimSpace(dom.SeparatorTrimFirst.ReplaceAllString(title, "$1"))
		}
	case strings.Contains(title, ": "):
		trimmed := strings.TrimSpace(title)
		matchesH1 := false
		for _, h1 := range h1s {
			if h1 == trimmed {
				matchesH1 = true
				break
			}
		}
		if !matchesH1 {
			idx := strings.LastIndex(title, ":")
			after := strings.TrimSpace(title[idx+1:])
			if wordCount(after) < 3 {
				idx = strings.Index(title, ":")
				after = strings.TrimSpace(title[idx+1:])
				before := strings.TrimSpace(title[:idx])
				if wordCount(before) > 5 {
					after = title
				}
			}
			curTitle = after
		}
	case (len(title) > 150 || len(title) < 15) && len(h1s) == 1:
		curTitle = h1s[0]
	}

	curTitle = strings.TrimSpace(dom.Whitespace.ReplaceAllString(curTitle, " "))

	if wordCount(curTitle) <= 4 && !dom.SeparatorHierarchical.MatchString(original) {
		return strings.TrimSpace(dom.Whitespace.ReplaceAllString(original, " "))
	}
	return curTitle
}

func wordCount(s string) int {
	fields := strings.Fields(s)
	return len(fields)
}

// bylineHeuristic implements §4.3 item 4's fallback scan.
func bylineHeuristic(root *html.Node) string {
	var found string
	for _, n := range dom.Descendants(root) {
		if n.Type != html.ElementNode {
			continue
		}
		text := strings.TrimSpace(dom.InnerText(n, true))
		if len(text) == 0 || len(text) > 99 {
			continue
		}
		if !isBylineCandidate(n) {
			continue
		}
		if preferred := preferredItempropName(n); preferred != "" {
			text = preferred
		}
		found = text
		break
	}
	return found
}

func isBylineCandidate(n *html.Node) bool {
	if rel, ok := dom.Attr(n, "rel"); ok && strings.Contains(rel, "author") {
		return true
	}
	if itemprop, ok := dom.Attr(n, "itemprop"); ok && strings.Contains(itemprop, "author") {
		return true
	}
	class, _ := dom.Attr(n, "class")
	id, _ := dom.Attr(n, "id")
	signal := class + " " + id
	return dom.Byline.MatchString(signal)
}

func preferredItempropName(n *html.Node) string {
	for _, d := range dom.Descendants(n) {
		if d.Type != html.ElementNode {
			continue
		}
		if itemprop, ok := dom.Attr(d, "itemprop"); ok && strings.Contains(itemprop, "name") {
			return strings.TrimSpace(dom.InnerText(d, true))
		}
	}
	return ""
}
