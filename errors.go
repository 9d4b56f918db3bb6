package readability

import "github.com/arcdodge/readability/internal/pipeline"

// ElementLimitExceeded is returned when the parsed document's element
// count exceeds Options.MaxElements.
type ElementLimitExceeded = pipeline.ElementLimitExceeded

// MissingArticleContent is returned when neither the scored candidate nor
// the whole-body fallback produced any extractable content.
type MissingArticleContent = pipeline.MissingArticleContent

// InvalidBaseURL is returned by New when the supplied base URL string
// fails to parse.
type InvalidBaseURL = pipeline.InvalidBaseURL

// InvalidSelector is reserved for internal selector-compilation failures;
// none of the pipeline's patterns are dynamic, so it should not surface in
// practice.
type InvalidSelector = pipeline.InvalidSelector
