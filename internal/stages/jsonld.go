package stages

import (
	"encoding/json"
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"golang.org/x/net/html"
)

// jsonLDCandidate holds the fields harvested from one recognised article
// object (§4.3 step 1), before title disambiguation against the document
// title.
type jsonLDCandidate struct {
	name          string
	headline      string
	byline        string
	excerpt       string
	siteName      string
	publishedTime string
}

// extractJSONLD walks every <script type="application/ld+json"> block,
// decodes it as a stream of JSON values, and descends into @graph,
// mainEntity, and mainEntityOfPage looking for a recognised article
// @type. It returns the merged metadata (first non-empty field across all
// qualifying objects wins) plus the resolved title (name vs headline
// disambiguated by similarity to docTitle).
func extractJSONLD(root *html.Node, docTitle string) (title, byline, excerpt, siteName, publishedTime string) {
	scripts := dom.FindAll(root, "script")
	return extractJSONLDFromScripts(scripts, docTitle)
}

// extractJSONLDFromScripts decodes every application/ld+json script in
// scripts and merges the recognised article objects found (first
// non-empty field wins). scripts may come from the primary goquery walk
// or the xpathScriptNodes secondary harvest — both yield plain
// golang.org/x/net/html nodes.
func extractJSONLDFromScripts(scripts []*html.Node, docTitle string) (title, byline, excerpt, siteName, publishedTime string) {
	var candidates []jsonLDCandidate

	for _, script := range scripts {
		if typ, _ := dom.Attr(script, "type"); !strings.EqualFold(typ, "application/ld+json") {
			continue
		}
		content := strings.TrimSpace(dom.InnerText(script, false))
		content = dom.CDATAWrapper.ReplaceAllString(content, "")
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}

		dec := json.NewDecoder(strings.NewReader(content))
		for {
			var v interface{}
			if err := dec.Decode(&v); err != nil {
				break
			}
			walkJSONLD(v, &candidates)
		}
	}

	for _, c := range candidates {
		if title == "" {
			title = resolveJSONLDTitle(c, docTitle)
		}
		if byline == "" {
			byline = c.byline
		}
		if excerpt == "" {
			excerpt = c.excerpt
		}
		if siteName == "" {
			siteName = c.siteName
		}
		if publishedTime == "" {
			publishedTime = c.publishedTime
		}
	}
	return
}

func resolveJSONLDTitle(c jsonLDCandidate, docTitle string) string {
	if c.name != "" && c.headline != "" && c.name != c.headline {
		if dom.TitleSimilarity(c.headline, docTitle) > dom.TitleSimilarity(c.name, docTitle) {
			return c.headline
		}
		return c.name
	}
	if c.name != "" {
		return c.name
	}
	return c.headline
}

// walkJSONLD recursively descends v, appending a candidate for every
// object whose @type is (or contains) a recognised article type, then
// continuing into @graph, mainEntity, mainEntityOfPage, and all other
// nested values regardless of whether the current object qualified.
func walkJSONLD(v interface{}, out *[]jsonLDCandidate) {
	switch val := v.(type) {
	case map[string]interface{}:
		if isArticleType(val["@type"]) {
			*out = append(*out, candidateFromObject(val))
		}
		for _, key := range []string{"@graph", "mainEntity", "mainEntityOfPage"} {
			if nested, ok := val[key]; ok {
				walkJSONLD(nested, out)
			}
		}
		for k, nested := range val {
			if k == "@graph" || k == "mainEntity" || k == "mainEntityOfPage" {
				continue
			}
			walkJSONLD(nested, out)
		}
	case []interface{}:
		for _, item := range val {
			walkJSONLD(item, out)
		}
	}
}

func isArticleType(t interface{}) bool {
	switch val := t.(type) {
	case string:
		return dom.JSONLDArticleTypes.MatchString(val)
	case []interface{}:
		for _, item := range val {
			if s, ok := item.(string); ok && dom.JSONLDArticleTypes.MatchString(s) {
				return true
			}
		}
	}
	return false
}

func candidateFromObject(obj map[string]interface{}) jsonLDCandidate {
	c := jsonLDCandidate{
		name:          stringField(obj["name"]),
		headline:      stringField(obj["headline"]),
		excerpt:       stringField(obj["description"]),
		publishedTime: stringField(obj["datePublished"]),
	}
	c.byline = authorName(obj["author"])
	c.siteName = stringField(obj["siteName"])
	if c.siteName == "" {
		if pub, ok := obj["publisher"].(map[string]interface{}); ok {
			c.siteName = stringField(pub["name"])
		}
	}
	return c
}

func stringField(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func authorName(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]interface{}:
		return stringField(val["name"])
	case []interface{}:
		for _, item := range val {
			if name := authorName(item); name != "" {
				return name
			}
		}
	}
	return ""
}
