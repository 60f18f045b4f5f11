package pdf

import (
	"testing"

	"pdf_merger/plan"
)

type progressEvent struct {
	current, total int
	message        string
}

func recordProgress(events *[]progressEvent) plan.ProgressFunc {
	return func(current, total int, message string) {
		*events = append(*events, progressEvent{current, total, message})
	}
}

// The merge stream must stay monotone across its validation, planning,
// write, and compress phases so the completion condition
// current == total fires exactly once, at the very end.
func TestMergeProgressStreamCompletesOnce(t *testing.T) {
	var events []progressEvent
	inputs := 2
	steps := 2*inputs + 1 + 1 // validation + planning + write + compress
	stream := newProgressStream(recordProgress(&events), steps)

	stream.start("Validating PDF files...")
	stream.step("Validated: a.pdf")
	stream.step("Validated: b.pdf")

	sources := []plan.Source{
		{Name: "a.pdf", Pages: 3},
		{Name: "b.pdf", Pages: 1},
	}
	if _, err := plan.PlanMerge(sources, stream.phase()); err != nil {
		t.Fatalf("PlanMerge: %v", err)
	}

	stream.step("Merged 2 files into out.pdf")

	// A compress pass reports (0, 1) then (1, 1); routed through the
	// stream it must contribute exactly one step.
	compress := stream.phase()
	compress(0, 1, "Compressing PDF...")
	compress(1, 1, "Compressed by 10.0% (100 -> 90 bytes)")

	if len(events) != steps+1 {
		t.Fatalf("got %d events, want %d", len(events), steps+1)
	}
	for i, ev := range events {
		if ev.total != steps {
			t.Errorf("event %d: total = %d, want %d", i, ev.total, steps)
		}
		if ev.current != i {
			t.Errorf("event %d: current = %d, want %d", i, ev.current, i)
		}
		done := ev.current == ev.total && ev.total > 0
		if done != (i == len(events)-1) {
			t.Errorf("event %d (%d/%d): completion fired mid-stream", i, ev.current, ev.total)
		}
	}
	if last := events[len(events)-1]; last.message != "Compressed by 10.0% (100 -> 90 bytes)" {
		t.Errorf("final message = %q", last.message)
	}
}

func TestProgressStreamNilFunc(t *testing.T) {
	stream := newProgressStream(nil, 2)
	stream.start("start")
	stream.step("one")
	stream.phase()(1, 1, "two")
	if stream.done != 2 {
		t.Errorf("done = %d, want 2", stream.done)
	}
}

func TestProgressStreamPhaseDropsStartEvent(t *testing.T) {
	var events []progressEvent
	stream := newProgressStream(recordProgress(&events), 3)
	phase := stream.phase()
	phase(0, 3, "phase start")
	phase(1, 3, "a")
	phase(2, 3, "b")
	phase(3, 3, "c")

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, ev := range events {
		if ev.current != i+1 || ev.total != 3 {
			t.Errorf("event %d = %d/%d, want %d/3", i, ev.current, ev.total, i+1)
		}
	}
}
