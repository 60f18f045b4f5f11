package pdf

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DirPermissions for output directory creation
const DirPermissions = 0755

// stem returns the input's file name without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// splitPartName names the 1-based n-th output of a split-by-count,
// e.g. report.pdf part 3 -> report_part3.pdf.
func splitPartName(outputDir, input string, part int) string {
	return filepath.Join(outputDir, fmt.Sprintf("%s_part%d.pdf", stem(input), part))
}

// splitRangeName names the output for one range expression,
// e.g. report.pdf "1-5,7" -> report_pages1-5_7.pdf.
func splitRangeName(outputDir, input, expr string) string {
	safe := strings.ReplaceAll(expr, " ", "")
	safe = strings.ReplaceAll(safe, ",", "_")
	return filepath.Join(outputDir, fmt.Sprintf("%s_pages%s.pdf", stem(input), safe))
}
