package pipeline

import "fmt"

// ElementLimitExceeded is returned by the ElementLimit stage when the
// document's element count exceeds Options.MaxElements.
type ElementLimitExceeded struct {
	Found int
	Limit int
}

func (e *ElementLimitExceeded) Error() string {
	return fmt.Sprintf("readability: document has %d elements, exceeding the limit of %d", e.Found, e.Limit)
}

// MissingArticleContent is returned when the Article stage's primary
// selection and fallback-to-body both produce empty markup.
type MissingArticleContent struct{}

func (e *MissingArticleContent) Error() string {
	return "readability: could not extract article content"
}

// InvalidBaseURL is returned by the constructor when the supplied base URL
// fails to parse.
type InvalidBaseURL struct {
	Raw string
	Err error
}

func (e *InvalidBaseURL) Error() string {
	return fmt.Sprintf("readability: invalid base url %q: %v", e.Raw, e.Err)
}

func (e *InvalidBaseURL) Unwrap() error {
	return e.Err
}

// InvalidSelector is reserved for internal selector-compilation failures.
// None of the pipeline's patterns are dynamic, so it should never surface
// in practice; it exists to complete the error taxonomy spec.md §6 names.
type InvalidSelector struct {
	Msg string
}

func (e *InvalidSelector) Error() string {
	return fmt.Sprintf("readability: invalid selector: %s", e.Msg)
}
