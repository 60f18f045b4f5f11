package pdf

import "pdf_merger/plan"

// progressStream renumbers the phases of a multi-step operation into a
// single monotone 0..steps sequence, so an observer's completion
// trigger (current == total && total > 0) fires exactly once, at the
// true end of the operation.
type progressStream struct {
	fn    plan.ProgressFunc
	steps int
	done  int
}

func newProgressStream(fn plan.ProgressFunc, steps int) *progressStream {
	return &progressStream{fn: fn, steps: steps}
}

// start announces the operation at current 0.
func (s *progressStream) start(message string) {
	s.fn.Report(0, s.steps, message)
}

// step advances the stream by one and reports it.
func (s *progressStream) step(message string) {
	s.done++
	s.fn.Report(s.done, s.steps, message)
}

// phase adapts a nested operation's ProgressFunc into steps of this
// stream. The nested phase-start event (current 0) is dropped; every
// other event advances the stream by one.
func (s *progressStream) phase() plan.ProgressFunc {
	return func(current, total int, message string) {
		if current == 0 {
			return
		}
		s.step(message)
	}
}
