package engine

import "github.com/pkg/errors"

// Run is the core's single entry point: it binds s1/s2 and params to a
// fresh Computation, fills the score and walk matrices in parallel
// (Params.Workers workers, column-striped), reconstructs every
// co-optimal alignment and reports each to sink, then returns the run's
// Summary. There is no cancellation support by design: a run proceeds
// synchronously to completion (see the concurrency model's note on
// resource errors being the only fatal path).
func Run(s1, s2 []byte, params Params, sink AlignmentSink) (Summary, error) {
	if err := params.Validate(); err != nil {
		return Summary{}, errors.Wrap(err, "invalid alignment parameters")
	}
	if sink == nil {
		sink = DiscardSink
	}

	comp := newComputation(s1, s2, params)

	if err := comp.fillScores(); err != nil {
		return Summary{}, errors.Wrap(err, "scoring the table")
	}

	comp.reconstruct(sink)

	return comp.summary(), nil
}
