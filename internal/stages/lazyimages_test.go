package stages

import (
	"testing"

	"github.com/arcdodge/readability/internal/dom"
)

func TestFixLazyImagesCopiesDataSrcIntoSrc(t *testing.T) {
	ctx := newTestContext(t, `<html><body><img class="lazy" data-src="real.jpg"></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FixLazyImages{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := dom.FindAll(ctx.ArticleFragment(), "img")[0]
	if src, _ := dom.Attr(img, "src"); src != "real.jpg" {
		t.Errorf("src = %q, want %q", src, "real.jpg")
	}
}

func TestFixLazyImagesCopiesSrcsetCandidate(t *testing.T) {
	ctx := newTestContext(t, `<html><body><img class="lazyload" data-srcset="a.jpg 1x, b.jpg 2x"></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FixLazyImages{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := dom.FindAll(ctx.ArticleFragment(), "img")[0]
	if srcset, _ := dom.Attr(img, "srcset"); srcset != "a.jpg 1x, b.jpg 2x" {
		t.Errorf("srcset = %q, want the copied candidate", srcset)
	}
}

func TestFixLazyImagesSkipsWhenAlreadyHasRealSrc(t *testing.T) {
	ctx := newTestContext(t, `<html><body><img src="real.jpg" data-src="other.jpg"></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FixLazyImages{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := dom.FindAll(ctx.ArticleFragment(), "img")[0]
	if src, _ := dom.Attr(img, "src"); src != "real.jpg" {
		t.Errorf("src = %q, want the original real.jpg untouched (not flagged lazy)", src)
	}
}

func TestFixLazyImagesSynthesizesImgUnderFigure(t *testing.T) {
	ctx := newTestContext(t, `<html><body><figure class="lazy" data-src="real.jpg"><figcaption>c</figcaption></figure></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FixLazyImages{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	imgs := dom.FindAll(ctx.ArticleFragment(), "img")
	if len(imgs) != 1 {
		t.Fatalf("expected a synthesized <img>, got %d", len(imgs))
	}
	if src, _ := dom.Attr(imgs[0], "src"); src != "real.jpg" {
		t.Errorf("synthesized img src = %q, want %q", src, "real.jpg")
	}
}

func TestFixLazyImagesSkipsFigureWithExistingMedia(t *testing.T) {
	ctx := newTestContext(t, `<html><body><figure class="lazy" data-src="other.jpg"><img src="real.jpg"></figure></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FixLazyImages{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	imgs := dom.FindAll(ctx.ArticleFragment(), "img")
	if len(imgs) != 1 {
		t.Fatalf("expected the existing <img> to remain the only one, got %d", len(imgs))
	}
	if src, _ := dom.Attr(imgs[0], "src"); src != "real.jpg" {
		t.Errorf("existing img src = %q, want untouched %q", src, "real.jpg")
	}
}

func TestFixLazyImagesRemovesSmallBase64Placeholder(t *testing.T) {
	ctx := newTestContext(t, `<html><body><img src="data:image/gif;base64,AAAA" data-src="real.jpg"></body></html>`)
	ctx.SetArticleFragment(ctx.Body())

	if err := (FixLazyImages{}).Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := dom.FindAll(ctx.ArticleFragment(), "img")[0]
	if src, _ := dom.Attr(img, "src"); src != "real.jpg" {
		t.Errorf("src = %q, want the placeholder replaced by the lazy source %q", src, "real.jpg")
	}
}
