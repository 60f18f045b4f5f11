// Package plan builds page-copy plans for merge and split operations.
// A plan is pure data: the ordered list of (source, page) pairs that make
// up one output document. The pdf package executes plans against the codec.
package plan

import (
	"errors"
	"fmt"

	"pdf_merger/pagerange"
)

// ProgressFunc receives progress notifications. Calls are synchronous and
// in-order on the planning goroutine; arguments are plain values, so a UI
// front-end may redispatch them to another thread without synchronization.
// A nil ProgressFunc disables reporting.
type ProgressFunc func(current, total int, message string)

func (f ProgressFunc) Report(current, total int, message string) {
	if f != nil {
		f(current, total, message)
	}
}

// Source describes one input document as the planner sees it: a display
// name, its total page count, and the range expression selecting pages
// from it. An empty Range selects every page.
type Source struct {
	Name  string
	Pages int
	Range string
}

// PageRef identifies one page of one source. Source indexes into the
// slice handed to the planner; Page is zero-based.
type PageRef struct {
	Source int
	Page   int
}

// Plan is the ordered list of pages composing one output document.
type Plan []PageRef

var (
	// ErrTooFewSources is returned by PlanMerge for fewer than two sources.
	ErrTooFewSources = errors.New("at least 2 PDF files are required for merging")

	// ErrBadChunkSize is returned by PlanSplitByCount for a chunk size below 1.
	ErrBadChunkSize = errors.New("pages per file must be at least 1")

	// ErrNoRanges is returned by PlanSplitByRanges for an empty expression list.
	ErrNoRanges = errors.New("no page ranges provided")
)

// PlanMerge resolves each source's range expression against its own page
// count and concatenates the selections in source order.
//
// Progress: one leading event at current 0, then one event per source with
// strictly increasing current; the last event fires at current == total and
// carries the overall summary, which observers use as the completion signal.
func PlanMerge(sources []Source, progress ProgressFunc) (Plan, error) {
	if len(sources) < 2 {
		return nil, ErrTooFewSources
	}

	total := len(sources)
	progress.Report(0, total, fmt.Sprintf("Merging %d PDF files...", total))

	var out Plan
	for i, src := range sources {
		pages, err := pagerange.Parse(src.Range, src.Pages)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name, err)
		}
		for _, p := range pages {
			out = append(out, PageRef{Source: i, Page: p})
		}
		if i == total-1 {
			progress.Report(i+1, total,
				fmt.Sprintf("Planned %d pages from %d files", len(out), total))
		} else {
			progress.Report(i+1, total,
				fmt.Sprintf("Added %d pages from %s", len(pages), src.Name))
		}
	}

	return out, nil
}

// PlanSplitByCount partitions src into consecutive chunks of at most
// pagesPerFile pages, one plan per output file. Emits one progress event
// per chunk planned.
func PlanSplitByCount(src Source, pagesPerFile int, progress ProgressFunc) ([]Plan, error) {
	if pagesPerFile < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrBadChunkSize, pagesPerFile)
	}

	numFiles := (src.Pages + pagesPerFile - 1) / pagesPerFile
	plans := make([]Plan, 0, numFiles)
	for f := 0; f < numFiles; f++ {
		start := f * pagesPerFile
		end := start + pagesPerFile
		if end > src.Pages {
			end = src.Pages
		}
		p := make(Plan, 0, end-start)
		for i := start; i < end; i++ {
			p = append(p, PageRef{Page: i})
		}
		plans = append(plans, p)
		progress.Report(f+1, numFiles,
			fmt.Sprintf("Planned part %d (pages %d-%d)", f+1, start+1, end))
	}

	return plans, nil
}

// PlanSplitByRanges resolves each expression against src and produces one
// plan per non-empty selection. Every expression is validated strictly; an
// expression that resolves to no pages is skipped rather than rejected, but
// still counts toward progress.
func PlanSplitByRanges(src Source, exprs []string, progress ProgressFunc) ([]Plan, error) {
	if len(exprs) == 0 {
		return nil, ErrNoRanges
	}

	var plans []Plan
	for i, expr := range exprs {
		pages, err := pagerange.Parse(expr, src.Pages)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", expr, err)
		}
		if len(pages) == 0 {
			progress.Report(i+1, len(exprs), fmt.Sprintf("Skipped empty range %q", expr))
			continue
		}
		p := make(Plan, 0, len(pages))
		for _, page := range pages {
			p = append(p, PageRef{Page: page})
		}
		plans = append(plans, p)
		progress.Report(i+1, len(exprs), fmt.Sprintf("Planned file for pages %s", expr))
	}

	return plans, nil
}
