package pdf

import (
	"fmt"
	"strconv"

	"pdf_merger/plan"
)

// selection compacts sorted zero-based page indices into the 1-based
// page-selection tokens pdfcpu expects, e.g. [0 1 2 4] -> ["1-3" "5"].
func selection(pages []int) []string {
	var sel []string
	for i := 0; i < len(pages); {
		j := i
		for j+1 < len(pages) && pages[j+1] == pages[j]+1 {
			j++
		}
		if i == j {
			sel = append(sel, strconv.Itoa(pages[i]+1))
		} else {
			sel = append(sel, fmt.Sprintf("%d-%d", pages[i]+1, pages[j]+1))
		}
		i = j + 1
	}
	return sel
}

// planPages returns the page indices of a single-source plan.
func planPages(p plan.Plan) []int {
	pages := make([]int, len(p))
	for i, ref := range p {
		pages[i] = ref.Page
	}
	return pages
}
