package stages

import (
	"net/url"
	"strings"

	"github.com/arcdodge/readability/internal/dom"
	"github.com/arcdodge/readability/internal/pipeline"
)

// FixRelativeUris is stage 14 (§4.6).
type FixRelativeUris struct{}

func (FixRelativeUris) Name() string { return "FixRelativeUris" }

func (FixRelativeUris) Run(ctx *pipeline.Context) error {
	fragment := ctx.ArticleFragment()
	if fragment == nil || ctx.BaseURL == nil {
		return nil
	}
	base := ctx.BaseURL

	for _, n := range dom.Descendants(fragment) {
		if href, ok := dom.Attr(n, "href"); ok {
			if !strings.HasPrefix(href, "#") && !strings.HasPrefix(strings.ToLower(href), "javascript:") {
				dom.SetAttr(n, "href", resolveURI(href, base))
			}
		}
		if src, ok := dom.Attr(n, "src"); ok {
			dom.SetAttr(n, "src", resolveURI(src, base))
		}
		if poster, ok := dom.Attr(n, "poster"); ok {
			dom.SetAttr(n, "poster", resolveURI(poster, base))
		}
		if srcset, ok := dom.Attr(n, "srcset"); ok {
			dom.SetAttr(n, "srcset", resolveSrcset(srcset, base))
		}
	}
	return nil
}

// resolveURI keeps the value unchanged if it already parses as absolute,
// otherwise joins it against base; unparsable or unjoinable values are
// left as-is (§7: URI resolution is lenient).
func resolveURI(raw string, base *url.URL) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.IsAbs() {
		return raw
	}
	return base.ResolveReference(u).String()
}

func resolveSrcset(value string, base *url.URL) string {
	candidates := strings.Split(value, ",")
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		resolved := resolveURI(fields[0], base)
		if len(fields) > 1 {
			resolved = resolved + " " + strings.Join(fields[1:], " ")
		}
		out = append(out, resolved)
	}
	return strings.Join(out, ", ")
}
