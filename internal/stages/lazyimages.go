package stages

import (
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
	"golang.org/x/net/html"
)

// FixLazyImages copies a lazy-loading image source into the standard src/
// srcset attribute so the image survives without JavaScript. It runs on
// the article fragment, after Article has selected it, grounded on
// original_source's fix_lazy_images.rs.
type FixLazyImages struct{}

func (FixLazyImages) Name() string { return "FixLazyImages" }

func (FixLazyImages) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil {
		return nil
	}
	for _, n := range dom.FindAll(fragment, "img", "picture", "figure") {
		fixLazyImageNode(n)
	}
	return nil
}

func fixLazyImageNode(n *html.Node) {
	removeLazyPlaceholderSrc(n)

	hasSrc := attrNonEmpty(n, "src")
	hasSrcset := hasUsableSrcset(n)
	class, _ := dom.Attr(n, "class")
	classIsLazy := strings.Contains(strings.ToLower(class), "lazy")

	if (hasSrc || hasSrcset) && !classIsLazy {
		return
	}

	instructions := collectLazySources(n)
	if len(instructions) == 0 {
		return
	}

	switch dom.NodeName(n) {
	case "img", "picture":
		for attr, value := range instructions {
			dom.SetAttr(n, attr, value)
		}
	case "figure":
		if hasDescendantMedia(n) {
			return
		}
		img := dom.NewElement("img")
		for attr, value := range instructions {
			dom.SetAttr(img, attr, value)
		}
		dom.AppendChild(n, img)
	}
}

// collectLazySources scans n's attributes (excluding src/srcset/alt) for
// values that look like a lazy-loaded image source, keyed by which
// standard attribute they should populate. A later attribute matching the
// same pattern overwrites an earlier one, same as the original's
// last-write-wins attribute-list replay.
func collectLazySources(n *html.Node) map[string]string {
	instructions := make(map[string]string)
	for _, a := range n.Attr {
		if dom.LazyLoadAttrSkip[a.Key] {
			continue
		}
		switch {
		case dom.SrcsetCandidateValue.MatchString(a.Val):
			instructions["srcset"] = a.Val
		case dom.LazyImageSrcValue.MatchString(a.Val):
			instructions["src"] = a.Val
		}
	}
	return instructions
}

func hasDescendantMedia(n *html.Node) bool {
	return len(dom.FindAll(n, "img", "picture")) > 0
}

func attrNonEmpty(n *html.Node, name string) bool {
	v, ok := dom.Attr(n, name)
	return ok && strings.TrimSpace(v) != ""
}

func hasUsableSrcset(n *html.Node) bool {
	v, ok := dom.Attr(n, "srcset")
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(v)
	return trimmed != "" && !strings.EqualFold(trimmed, "null")
}

// removeLazyPlaceholderSrc drops a tiny base64 data: URL src — a common
// blank/blur placeholder — when another attribute already carries a real
// image URL, so it doesn't get mistaken for a usable source above.
func removeLazyPlaceholderSrc(n *html.Node) {
	src, ok := dom.Attr(n, "src")
	if !ok {
		return
	}
	captures := dom.Base64DataURL.FindStringSubmatch(src)
	if captures == nil {
		return
	}
	if strings.EqualFold(captures[1], "image/svg+xml") {
		return
	}

	srcCouldBeReplaced := false
	for _, a := range n.Attr {
		if a.Key == "src" {
			continue
		}
		if dom.ImageExtensionSuffix.MatchString(a.Val) {
			srcCouldBeReplaced = true
			break
		}
	}
	if !srcCouldBeReplaced {
		return
	}

	loc := dom.Base64DataURL.FindStringSubmatchIndex(src)
	dataStart := loc[4]
	if dataStart < 0 {
		dataStart = len(src)
	}
	if len(src)-dataStart < 133 {
		dom.RemoveAttr(n, "src")
	}
}
