// Package pipeline holds the shared Context, Options, and error taxonomy
// that the ordered extraction stages (internal/stages) operate over, plus
// the Pipeline type that runs them in declared order (§2, §5).
package pipeline

// Stage is the polymorphic unit spec.md §2 describes: "run(context) ->
// success | error". A stage owns no persistent state across parses — the
// pipeline is reconstructed per call to Parse.
type Stage interface {
	Name() string
	Run(ctx *Context) error
}

// StageFunc adapts a plain function to the Stage interface for stages that
// need no fields beyond a name (most sanitation stages).
type StageFunc struct {
	StageName string
	Fn        func(ctx *Context) error
}

func (f StageFunc) Name() string { return f.StageName }

func (f StageFunc) Run(ctx *Context) error { return f.Fn(ctx) }

// Pipeline runs an ordered list of stages against a Context. A stage that
// returns an error aborts the whole run (fail-fast); per spec.md §7, only
// ElementLimit and the Article stage's terminal empty-fragment case are
// expected to do so — every sanitation stage is total.
type Pipeline struct {
	Stages []Stage
}

// Run executes every stage in order, stopping at the first error.
func (p *Pipeline) Run(ctx *Context) error {
	for _, stage := range p.Stages {
		if err := stage.Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
