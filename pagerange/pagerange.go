// Package pagerange parses the page-range mini-language shared by every
// operation in this tool: a comma-separated list of 1-based page numbers
// and inclusive ranges like "1-5,7,10-12", or the keyword "all".
// Parsed results are zero-based, sorted, and deduplicated.
package pagerange

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// FormatError reports an expression that is not syntactically valid.
type FormatError struct {
	Expr string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid page range format: %s", e.Expr)
}

// BoundsError reports a term whose pages fall outside the document,
// or a range whose start exceeds its end.
type BoundsError struct {
	Term       string
	TotalPages int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("invalid page range: %s. Pages must be between 1 and %d", e.Term, e.TotalPages)
}

// Parse resolves expr against a document of totalPages pages into a sorted,
// deduplicated list of zero-based page indices. An empty expression or the
// keyword "all" (case-insensitive) selects every page.
func Parse(expr string, totalPages int) ([]int, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || strings.EqualFold(trimmed, "all") {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i
		}
		return pages, nil
	}

	var pages []int
	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)

		if strings.Contains(part, "-") {
			// Range like "1-5"
			bounds := strings.SplitN(part, "-", 2)
			start, err := parsePage(bounds[0])
			if err != nil {
				return nil, &FormatError{Expr: expr}
			}
			end, err := parsePage(bounds[1])
			if err != nil {
				return nil, &FormatError{Expr: expr}
			}
			if start < 0 || end >= totalPages || start > end {
				return nil, &BoundsError{Term: part, TotalPages: totalPages}
			}
			for p := start; p <= end; p++ {
				pages = append(pages, p)
			}
			continue
		}

		// Single page like "7"
		page, err := parsePage(part)
		if err != nil {
			return nil, &FormatError{Expr: expr}
		}
		if page < 0 || page >= totalPages {
			return nil, &BoundsError{Term: part, TotalPages: totalPages}
		}
		pages = append(pages, page)
	}

	// Sort and remove duplicates
	sort.Ints(pages)
	deduped := make([]int, 0, len(pages))
	for i, page := range pages {
		if i == 0 || page != pages[i-1] {
			deduped = append(deduped, page)
		}
	}

	return deduped, nil
}

// parsePage parses a single 1-based page number and converts it to zero-based.
func parsePage(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
