// Package stages implements the sixteen ordered pipeline stages of spec.md
// §2/§4 plus six supplemented stages, each a stateless pipeline.Stage
// (FixRelativeUris reads the base URL from the Context it is run on).
package stages

import "github.com/arcdodge/readability/internal/pipeline"

// ElementLimit is stage 1: guard against pathological documents (§4.1).
type ElementLimit struct{}

func (ElementLimit) Name() string { return "ElementLimit" }

func (ElementLimit) Run(ctx *pipeline.Context) error {
	if ctx.Options.MaxElements <= 0 {
		return nil
	}
	found := ctx.ElementCount()
	if found > ctx.Options.MaxElements {
		return &pipeline.ElementLimitExceeded{Found: found, Limit: ctx.Options.MaxElements}
	}
	return nil
}
