package stages

import (
	"sort"
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// Article is stage 9, the extraction core: score candidate ancestors,
// select the best one, assemble its qualifying siblings, and wrap the
// result as the article fragment (§4.5).
type Article struct{}

func (Article) Name() string { return "Article" }

func (Article) Run(ctx *pipeline.Context) error {
	root := ctx.Root()
	body := ctx.Body()
	if body != nil {
		if lang, ok := dom.Attr(body, "lang"); ok {
			ctx.BodyLang = lang
		}
	}
	if root == nil || body == nil {
		return &pipeline.MissingArticleContent{}
	}

	scores := scoreCandidates(body, ctx.Options.NTopCandidates)

	var wrapper *html.Node
	var chosen *html.Node
	if len(scores) > 0 {
		chosen = selectTopCandidate(scores, ctx.Options.NTopCandidates)
		wrapper = assemble(chosen, scores)
	}

	if !fragmentHasContent(wrapper) {
		wrapper = fallbackArticle(body)
	}
	if !fragmentHasContent(wrapper) {
		return &pipeline.MissingArticleContent{}
	}

	if chosen != nil {
		if dir, ok := dom.FirstAncestorWithAttr(chosen, "dir", true); ok {
			ctx.ArticleDir = dir
		}
	}

	ctx.SetArticleFragment(wrapper)
	return nil
}

func fragmentHasContent(n *html.Node) bool {
	if n == nil {
		return false
	}
	if strings.TrimSpace(dom.InnerText(n, true)) != "" {
		return true
	}
	return len(dom.Descendants(n)) > 0
}

func fallbackArticle(body *html.Node) *html.Node {
	wrapper := pageWrapper()
	for _, c := range dom.AllChildren(body) {
		dom.AppendChild(wrapper, c)
	}
	return wrapper
}

func pageWrapper() *html.Node {
	w := dom.NewElement("div")
	dom.SetAttr(w, "id", "readability-page-1")
	dom.SetAttr(w, "class", "page")
	return w
}

// scoreCandidates computes the §4.5 per-element raw score for every
// scorable descendant of root and propagates it to up to 5 ancestors,
// seeding each ancestor's score on first contribution.
func scoreCandidates(root *html.Node, nTop int) map[*html.Node]float64 {
	scores := make(map[*html.Node]float64)
	seeded := make(map[*html.Node]bool)

	for _, el := range dom.FindAll(root, "section", "h2", "h3", "h4", "h5", "h6", "p", "td", "pre") {
		text := strings.TrimSpace(dom.InnerText(el, true))
		if len([]rune(text)) < 25 {
			continue
		}
		raw := 1.0 + float64(dom.CommaCount(text)) + minFloat(3, float64(len([]rune(text)))/100)

		for level, anc := range dom.Ancestors(el, 5) {
			if !seeded[anc] {
				scores[anc] = baseScore(dom.NodeName(anc)) + classWeight(anc)
				seeded[anc] = true
			}
			scores[anc] += raw / divider(level)
		}
	}

	for node := range scores {
		scores[node] *= 1 - dom.LinkDensity(node)
	}
	_ = nTop
	return scores
}

func divider(level int) float64 {
	switch {
	case level == 0:
		return 1
	case level == 1:
		return 2
	default:
		return float64(level+1) * 3
	}
}

func baseScore(tag string) float64 {
	switch tag {
	case "div":
		return 5
	case "pre", "td", "blockquote":
		return 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		return -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return -5
	default:
		return 0
	}
}

func classWeight(n *html.Node) float64 {
	var w float64
	class, _ := dom.Attr(n, "class")
	id, _ := dom.Attr(n, "id")
	for _, signal := range []string{class, id} {
		if signal == "" {
			continue
		}
		if dom.Positive.MatchString(signal) {
			w += 25
		}
		if dom.Negative.MatchString(signal) {
			w -= 25
		}
	}
	return w
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

type scoredNode struct {
	node  *html.Node
	score float64
}

// selectTopCandidate runs the five-step promotion algorithm of §4.5.
func selectTopCandidate(scores map[*html.Node]float64, nTop int) *html.Node {
	// Collect candidates in document order (map iteration order is random)
	// so the stable sort keeps equal-score candidates in that order.
	var treeRoot *html.Node
	for n := range scores {
		treeRoot = n
		break
	}
	for treeRoot != nil && treeRoot.Parent != nil {
		treeRoot = treeRoot.Parent
	}
	ranked := make([]scoredNode, 0, len(scores))
	for n := treeRoot; n != nil; n = dom.NextNode(n, false) {
		if s, ok := scores[n]; ok {
			ranked = append(ranked, scoredNode{n, s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if nTop <= 0 {
		nTop = 5
	}
	if nTop > len(ranked) {
		nTop = len(ranked)
	}
	top := ranked[:nTop]

	chosen := top[0].node
	topScore := top[0].score

	for anc := chosen.Parent; anc != nil && dom.NodeName(anc) != "body"; anc = anc.Parent {
		count := 0
		for _, alt := range top[1:] {
			if alt.score >= 0.75*topScore && ancestorChainContains(alt.node, anc) {
				count++
			}
		}
		if count >= 3 {
			chosen = anc
			break
		}
	}

	prevScore := scores[chosen]
	cur := chosen
	for {
		parent := cur.Parent
		if parent == nil || dom.NodeName(parent) == "body" {
			break
		}
		ancScore := scores[parent]
		if ancScore > prevScore && ancScore >= topScore/3 {
			chosen = parent
			break
		}
		if ancScore < topScore/3 {
			break
		}
		prevScore = ancScore
		cur = parent
	}

	if dom.NodeName(chosen) == "article" {
		if parent := chosen.Parent; parent != nil {
			ptag := dom.NodeName(parent)
			if (ptag == "div" || ptag == "section" || ptag == "main") && scores[chosen] >= 10 {
				chosen = parent
			}
		}
	}

	for {
		parent := chosen.Parent
		if parent == nil || dom.NodeName(parent) == "body" {
			break
		}
		if len(dom.Children(parent)) != 1 {
			break
		}
		chosen = parent
	}

	return chosen
}

func ancestorChainContains(n, anc *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p == anc {
			return true
		}
	}
	return false
}

// assemble implements §4.5's sibling-assembly pass, producing the
// <div id="readability-page-1" class="page"> wrapper around the chosen
// candidate and its qualifying siblings.
func assemble(chosen *html.Node, scores map[*html.Node]float64) *html.Node {
	wrapper := pageWrapper()
	topScore := scores[chosen]
	topClass, _ := dom.Attr(chosen, "class")
	var threshold float64
	if topScore*0.2 > 10.0 {
		threshold = topScore * 0.2
	} else {
		threshold = 10.0
	}

	parent := chosen.Parent
	if parent == nil {
		dom.AppendChild(wrapper, chosen)
		return wrapper
	}

	for _, c := range dom.AllChildren(parent) {
		if c == chosen {
			dom.AppendChild(wrapper, c)
			continue
		}
		switch c.Type {
		case html.ElementNode:
			s := scores[c]
			class, _ := dom.Attr(c, "class")
			if class != "" && topClass != "" && shareClassToken(class, topClass) {
				s += topScore * 0.2
			}
			if s >= threshold {
				dom.AppendChild(wrapper, c)
				continue
			}
			if dom.NodeName(c) == "p" {
				text := strings.TrimSpace(dom.InnerText(c, true))
				ld := dom.LinkDensity(c)
				tl := len([]rune(text))
				if (tl > 80 && ld < 0.25) || (tl > 0 && tl <= 80 && ld == 0 && strings.Contains(text, ".")) {
					dom.AppendChild(wrapper, c)
				}
			}
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				dom.AppendChild(wrapper, c)
			}
		}
	}

	return wrapper
}

func shareClassToken(a, b string) bool {
	bTokens := make(map[string]bool)
	for _, t := range strings.Fields(b) {
		bTokens[t] = true
	}
	for _, t := range strings.Fields(a) {
		if bTokens[t] {
			return true
		}
	}
	return false
}
