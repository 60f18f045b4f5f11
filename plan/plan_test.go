package plan

import (
	"errors"
	"reflect"
	"testing"

	"pdf_merger/pagerange"
)

type event struct {
	current, total int
	message        string
}

func recordEvents(events *[]event) ProgressFunc {
	return func(current, total int, message string) {
		*events = append(*events, event{current, total, message})
	}
}

func TestPlanMerge(t *testing.T) {
	sources := []Source{
		{Name: "a.pdf", Pages: 3, Range: "all"},
		{Name: "b.pdf", Pages: 2, Range: "1"},
	}

	got, err := PlanMerge(sources, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := Plan{
		{Source: 0, Page: 0},
		{Source: 0, Page: 1},
		{Source: 0, Page: 2},
		{Source: 1, Page: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PlanMerge = %v, want %v", got, want)
	}
}

func TestPlanMergeDefaultRange(t *testing.T) {
	got, err := PlanMerge([]Source{
		{Name: "a.pdf", Pages: 2},
		{Name: "b.pdf", Pages: 1},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("PlanMerge with empty ranges planned %d pages, want 3", len(got))
	}
}

func TestPlanMergeTooFewSources(t *testing.T) {
	if _, err := PlanMerge([]Source{{Name: "only.pdf", Pages: 4}}, nil); !errors.Is(err, ErrTooFewSources) {
		t.Errorf("PlanMerge with one source = %v, want ErrTooFewSources", err)
	}
	if _, err := PlanMerge(nil, nil); !errors.Is(err, ErrTooFewSources) {
		t.Errorf("PlanMerge with no sources = %v, want ErrTooFewSources", err)
	}
}

func TestPlanMergeBadRange(t *testing.T) {
	_, err := PlanMerge([]Source{
		{Name: "a.pdf", Pages: 3, Range: "1-9"},
		{Name: "b.pdf", Pages: 2},
	}, nil)

	var boundsErr *pagerange.BoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("PlanMerge = %v, want BoundsError", err)
	}
}

func TestPlanMergeProgress(t *testing.T) {
	var events []event
	_, err := PlanMerge([]Source{
		{Name: "a.pdf", Pages: 3},
		{Name: "b.pdf", Pages: 2},
	}, recordEvents(&events))
	if err != nil {
		t.Fatal(err)
	}

	if len(events) != 3 {
		t.Fatalf("got %d events %v, want 3", len(events), events)
	}
	for i, ev := range events {
		if ev.current != i || ev.total != 2 {
			t.Errorf("event %d = (%d, %d), want (%d, 2)", i, ev.current, ev.total, i)
		}
	}
	last := events[len(events)-1]
	if last.current != last.total {
		t.Errorf("final event current %d != total %d", last.current, last.total)
	}
}

func TestPlanSplitByCount(t *testing.T) {
	plans, err := PlanSplitByCount(Source{Name: "doc.pdf", Pages: 7}, 3, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := [][]int{{0, 1, 2}, {3, 4, 5}, {6}}
	if len(plans) != len(want) {
		t.Fatalf("got %d plans, want %d", len(plans), len(want))
	}
	for i, p := range plans {
		var pages []int
		for _, ref := range p {
			pages = append(pages, ref.Page)
		}
		if !reflect.DeepEqual(pages, want[i]) {
			t.Errorf("plan %d pages = %v, want %v", i, pages, want[i])
		}
	}
}

func TestPlanSplitByCountExact(t *testing.T) {
	plans, err := PlanSplitByCount(Source{Name: "doc.pdf", Pages: 6}, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 2 || len(plans[0]) != 3 || len(plans[1]) != 3 {
		t.Errorf("6 pages / 3 per file: got %v", plans)
	}
}

func TestPlanSplitByCountBadChunkSize(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := PlanSplitByCount(Source{Pages: 5}, n, nil); !errors.Is(err, ErrBadChunkSize) {
			t.Errorf("PlanSplitByCount(_, %d) = %v, want ErrBadChunkSize", n, err)
		}
	}
}

func TestPlanSplitByCountProgress(t *testing.T) {
	var events []event
	if _, err := PlanSplitByCount(Source{Name: "doc.pdf", Pages: 7}, 3, recordEvents(&events)); err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, ev := range events {
		if ev.current != i+1 || ev.total != 3 {
			t.Errorf("event %d = (%d, %d), want (%d, 3)", i, ev.current, ev.total, i+1)
		}
	}
}

func TestPlanSplitByRanges(t *testing.T) {
	plans, err := PlanSplitByRanges(Source{Name: "doc.pdf", Pages: 10}, []string{"1-5", "6-10"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 2 || len(plans[0]) != 5 || len(plans[1]) != 5 {
		t.Fatalf("got %v", plans)
	}
	if plans[1][0].Page != 5 {
		t.Errorf("second plan starts at %d, want 5", plans[1][0].Page)
	}
}

func TestPlanSplitByRangesStrictBounds(t *testing.T) {
	_, err := PlanSplitByRanges(Source{Name: "doc.pdf", Pages: 10}, []string{"1-5", "99", "6-10"}, nil)
	var boundsErr *pagerange.BoundsError
	if !errors.As(err, &boundsErr) {
		t.Fatalf("PlanSplitByRanges = %v, want BoundsError", err)
	}
}

func TestPlanSplitByRangesSkipsEmpty(t *testing.T) {
	// "all" over a zero-page source resolves to nothing: skipped, not an error.
	var events []event
	plans, err := PlanSplitByRanges(Source{Name: "empty.pdf", Pages: 0}, []string{"all"}, recordEvents(&events))
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != 0 {
		t.Errorf("got %d plans, want 0", len(plans))
	}
	if len(events) != 1 || events[0].current != 1 || events[0].total != 1 {
		t.Errorf("skipped range should still report progress, got %v", events)
	}
}

func TestPlanSplitByRangesEmptyList(t *testing.T) {
	if _, err := PlanSplitByRanges(Source{Pages: 5}, nil, nil); !errors.Is(err, ErrNoRanges) {
		t.Errorf("PlanSplitByRanges with no ranges = %v, want ErrNoRanges", err)
	}
}
