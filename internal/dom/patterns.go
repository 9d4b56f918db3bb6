// Package dom provides goquery/x-net-html helpers shared by the extraction
// pipeline: node traversal, text extraction, entity decoding, and the
// process-wide classifier regexes the spec calls for.
package dom

import "regexp"

// Unlikely is the §4.4 RemoveUnlikelyCandidates classifier.
var Unlikely = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)

// OkMaybe overrides Unlikely for signals that still look like content.
var OkMaybe = regexp.MustCompile(`(?i)and|article|body|column|content|main|mathjax|shadow`)

// Positive is the §4.5 class-weight positive classifier.
var Positive = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)

// Negative is the §4.5 class-weight negative classifier.
var Negative = regexp.MustCompile(`(?i)-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|footer|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|widget`)

// Byline matches the heuristic byline class/id/rel signal (§4.3 step 4).
var Byline = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)

// ShareElements matches share-widget class/id signals. No stage applies it.
var ShareElements = regexp.MustCompile(`(?i)(\b|_)(share|sharedaddy)(\b|_)`)

// Separator matches the §4.3.1 "space + separator + space" run.
var Separator = regexp.MustCompile(` [\|\-–—\\/>»] `)

// SeparatorHierarchical narrows Separator to the hierarchical-only subset
// (excludes the pipe, hyphen, en dash and em dash) used by the final
// short-title revert check.
var SeparatorHierarchical = regexp.MustCompile(` [\\/>»] `)

// SeparatorStrip matches every run of separator characters. No stage
// applies it.
var SeparatorStrip = regexp.MustCompile(`[\|\-–—\\/>»]+`)

// SeparatorTrimLast drops everything from the final separator onward.
var SeparatorTrimLast = regexp.MustCompile(`(.*)[\|\-–—\\/>»] .*`)

// SeparatorTrimFirst drops everything up to and including the first separator.
var SeparatorTrimFirst = regexp.MustCompile(`[^\|\-–—\\/>»]*[\|\-–—\\/>»](.*)`)

// Whitespace collapses runs of whitespace to a single space.
var Whitespace = regexp.MustCompile(`\s+`)

// JSONLDArticleTypes matches @type values recognised as article-like.
var JSONLDArticleTypes = regexp.MustCompile(`^(Article|AdvertiserContentArticle|NewsArticle|AnalysisNewsArticle|AskPublicNewsArticle|BackgroundNewsArticle|OpinionNewsArticle|ReportageNewsArticle|ReviewNewsArticle|Report|SatiricalArticle|ScholarlyArticle|MedicalScholarlyArticle|SocialMediaPosting|BlogPosting|LiveBlogPosting|DiscussionForumPosting|TechArticle|APIReference)$`)

// CDATAWrapper strips a leading <![CDATA[ / trailing ]]> from script bodies.
var CDATAWrapper = regexp.MustCompile(`^\s*<!\[CDATA\[|\]\]>\s*$`)

// Tokenize splits on non-word characters for title/token similarity.
var Tokenize = regexp.MustCompile(`\W+`)

// CommaVariants are the Unicode comma-like codepoints counted in §4.5 scoring,
// transcribed from the original Rust implementation's re.rs table.
var CommaVariants = []rune{',', '،', '﹐', '︐', '﹑', '⹀', '⸲', '，'}

// PhrasingTags is the §4.4 phrasing-content tag set.
var PhrasingTags = map[string]bool{
	"abbr": true, "audio": true, "b": true, "bdo": true, "br": true,
	"button": true, "cite": true, "code": true, "data": true,
	"datalist": true, "dfn": true, "em": true, "embed": true, "i": true,
	"img": true, "input": true, "kbd": true, "label": true, "mark": true,
	"math": true, "meter": true, "noscript": true, "object": true,
	"output": true, "progress": true, "q": true, "ruby": true, "samp": true,
	"script": true, "select": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "textarea": true, "time": true,
	"u": true, "var": true, "wbr": true, "s": true,
}

// BlockTags is the §4.4 NormalizeContainers block-level descendant set.
var BlockTags = map[string]bool{
	"blockquote": true, "dl": true, "div": true, "img": true, "ol": true,
	"p": true, "pre": true, "table": true, "ul": true,
}

// UnlikelyRoles is the §4.4 RemoveUnlikelyCandidates ARIA role block-list.
var UnlikelyRoles = map[string]bool{
	"menu": true, "menubar": true, "complementary": true, "navigation": true,
	"alert": true, "alertdialog": true, "dialog": true,
}

// ScorableTags is the §4.5 set of tags eligible for base scoring.
var ScorableTags = map[string]bool{
	"section": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "p": true, "td": true, "pre": true,
}

// StructuralWrapperTags is the GLOSSARY "empty structural wrapper" tag set.
var StructuralWrapperTags = map[string]bool{
	"div": true, "section": true, "header": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// PresentationalAttrs are the universally stripped presentational attributes (§4.6).
var PresentationalAttrs = []string{
	"align", "background", "bgcolor", "border", "cellpadding",
	"cellspacing", "frame", "hspace", "rules", "style", "valign", "vspace",
}

// SizedTags get width/height stripped in addition to PresentationalAttrs.
var SizedTags = map[string]bool{
	"table": true, "th": true, "td": true, "hr": true, "pre": true,
}

// NonContentTags are detached from the article fragment by RemoveNonContentElements.
var NonContentTags = map[string]bool{
	"aside": true, "button": true, "fieldset": true, "footer": true,
	"form": true, "iframe": true, "input": true, "link": true,
	"object": true, "select": true, "textarea": true, "embed": true,
}

// SrcsetCandidateValue matches an attribute value that looks like it holds
// a srcset-shaped lazy-load payload (an image URL followed by a width/
// density descriptor), transcribed from the original Rust implementation's
// re.rs table.
var SrcsetCandidateValue = regexp.MustCompile(`(?i).*\.(?:jpg|jpeg|png|webp)\s+\d.*`)

// LazyImageSrcValue matches an attribute value that looks like a bare lazy
// image URL, transcribed from re.rs.
var LazyImageSrcValue = regexp.MustCompile(`(?i)\s*\S+\.(?:jpg|jpeg|png|webp)\S*\s*`)

// Base64DataURL matches a data: URL carrying base64 payload, with the MIME
// type and payload captured, transcribed from re.rs.
var Base64DataURL = regexp.MustCompile(`(?i)data:\s*([^\s;,]+)\s*;\s*base64\s*,(?s)(.+)`)

// ImageExtensionSuffix matches any value ending in a common raster image
// extension (ignoring query strings), transcribed from re.rs.
var ImageExtensionSuffix = regexp.MustCompile(`(?i).*\.(?:jpg|jpeg|png|webp).*`)

// CommentSectionPattern matches id/class/aria-label signals for comment or
// discussion widgets, transcribed from re.rs.
var CommentSectionPattern = regexp.MustCompile(`(?i)comment|comments|discussion|discuss|respond|reply|talkback`)

// LazyLoadAttrSkip lists attributes FixLazyImages never treats as a lazy
// source candidate, since they're either the real source or unrelated.
var LazyLoadAttrSkip = map[string]bool{"src": true, "srcset": true, "alt": true}

// NoscriptSourceAttrs are the attributes UnwrapNoscriptImages copies from
// the real image onto the placeholder, and strips from the placeholder
// before copying.
var NoscriptSourceAttrs = []string{"src", "srcset", "data-src", "data-srcset"}

// ImageExtensions are the raw file extensions UnwrapNoscriptImages accepts
// as evidence that an attribute value names a real image, beyond the
// dedicated source attributes.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// CommentSectionTags are the container tags RemoveCommentSections inspects.
var CommentSectionTags = map[string]bool{
	"div": true, "section": true, "aside": true, "ul": true, "ol": true,
}

// CommentSectionRoles are the ARIA roles RemoveCommentSections treats as
// candidates when paired with a matching aria-label.
var CommentSectionRoles = map[string]bool{
	"complementary": true, "feed": true, "navigation": true,
}

// WhitespacePreservedTags are the ancestor tags under which
// NormalizeArticleWhitespace leaves text nodes untouched.
var WhitespacePreservedTags = map[string]bool{
	"pre": true, "code": true, "textarea": true, "script": true, "style": true,
}
