package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"pdf_merger/pagerange"
	"pdf_merger/plan"
)

// Text watermark appearance
const (
	WatermarkFontSize = 50
	WatermarkRotation = 45

	// DefaultWatermarkOpacity is used when the caller does not specify one
	DefaultWatermarkOpacity = 0.3
)

// MergeOptions controls a merge operation. Ranges maps an input path to
// the page-range expression selecting pages from it; inputs without an
// entry contribute every page.
type MergeOptions struct {
	Ranges   map[string]string
	Compress bool
}

// Merge combines the inputs into a single output PDF, in input order.
// Progress is reported as one monotone stream spanning validation,
// planning, the merged write, and the optional compress pass.
func Merge(inputs []string, output string, opts MergeOptions, progress plan.ProgressFunc) error {
	if len(inputs) < 2 {
		return plan.ErrTooFewSources
	}

	// One step per input for validation, one per source for planning,
	// one for the merged write, one more when compressing.
	steps := 2*len(inputs) + 1
	if opts.Compress {
		steps++
	}
	stream := newProgressStream(progress, steps)

	stream.start("Validating PDF files...")
	for _, input := range inputs {
		if err := Validate(input); err != nil {
			return err
		}
		stream.step(fmt.Sprintf("Validated: %s", filepath.Base(input)))
	}

	sources := make([]plan.Source, len(inputs))
	for i, input := range inputs {
		pages, err := PageCount(input)
		if err != nil {
			return err
		}
		sources[i] = plan.Source{
			Name:  filepath.Base(input),
			Pages: pages,
			Range: opts.Ranges[input],
		}
	}

	merged, err := plan.PlanMerge(sources, stream.phase())
	if err != nil {
		return err
	}

	// PlanMerge keeps sources contiguous and pages ascending within each
	// source, so the plan folds back into one selection per input.
	perSource := make([][]int, len(inputs))
	for _, ref := range merged {
		perSource[ref.Source] = append(perSource[ref.Source], ref.Page)
	}

	tmpDir, err := os.MkdirTemp("", "pdf_merger_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	parts := make([]string, 0, len(inputs))
	for i, input := range inputs {
		pages := perSource[i]
		if len(pages) == sources[i].Pages {
			// Full selection, merge the input as-is.
			parts = append(parts, input)
			continue
		}
		part := filepath.Join(tmpDir, fmt.Sprintf("part_%d.pdf", i))
		if err := api.TrimFile(input, part, selection(pages), nil); err != nil {
			return fmt.Errorf("failed to select pages from %s: %w", filepath.Base(input), err)
		}
		parts = append(parts, part)
	}

	if err := ensureParentDir(output); err != nil {
		return err
	}
	if err := api.MergeCreateFile(parts, output, false, nil); err != nil {
		return fmt.Errorf("failed to merge PDFs: %w", err)
	}
	stream.step(fmt.Sprintf("Merged %d files into %s", len(inputs), filepath.Base(output)))

	if opts.Compress {
		return Compress(output, output, stream.phase())
	}
	return nil
}

// ExtractPages copies the pages selected by rangeExpr into a new PDF.
func ExtractPages(input, rangeExpr, output string, progress plan.ProgressFunc) error {
	total, err := PageCount(input)
	if err != nil {
		return err
	}
	pages, err := pagerange.Parse(rangeExpr, total)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages to extract")
	}

	progress.Report(0, len(pages), "Extracting pages...")
	if err := ensureParentDir(output); err != nil {
		return err
	}
	if err := api.TrimFile(input, output, selection(pages), nil); err != nil {
		return fmt.Errorf("failed to extract pages: %w", err)
	}

	progress.Report(len(pages), len(pages),
		fmt.Sprintf("Successfully extracted %d pages", len(pages)))
	return nil
}

// SplitByCount splits the input into files of at most pagesPerFile
// consecutive pages each and returns the created file paths.
func SplitByCount(input string, pagesPerFile int, outputDir string, progress plan.ProgressFunc) ([]string, error) {
	total, err := PageCount(input)
	if err != nil {
		return nil, err
	}
	src := plan.Source{Name: filepath.Base(input), Pages: total}
	plans, err := plan.PlanSplitByCount(src, pagesPerFile, nil)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	progress.Report(0, len(plans), "Splitting PDF...")
	outputs := make([]string, 0, len(plans))
	for i, p := range plans {
		out := splitPartName(outputDir, input, i+1)
		if err := api.TrimFile(input, out, selection(planPages(p)), nil); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", filepath.Base(out), err)
		}
		outputs = append(outputs, out)
		progress.Report(i+1, len(plans), fmt.Sprintf("Created %s", filepath.Base(out)))
	}

	progress.Report(len(plans), len(plans),
		fmt.Sprintf("Successfully split into %d files", len(plans)))
	return outputs, nil
}

// SplitByRanges creates one output file per range expression that
// resolves to at least one page, and returns the created file paths.
func SplitByRanges(input string, exprs []string, outputDir string, progress plan.ProgressFunc) ([]string, error) {
	total, err := PageCount(input)
	if err != nil {
		return nil, err
	}
	src := plan.Source{Name: filepath.Base(input), Pages: total}
	plans, err := plan.PlanSplitByRanges(src, exprs, nil)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outputDir, DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	progress.Report(0, len(exprs), "Splitting PDF by ranges...")
	outputs := make([]string, 0, len(plans))
	next := 0
	for i, expr := range exprs {
		// Plans carry no expression, so re-resolve to pair each non-empty
		// expression with its plan for output naming.
		pages, err := pagerange.Parse(expr, total)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", expr, err)
		}
		if len(pages) == 0 {
			progress.Report(i+1, len(exprs), fmt.Sprintf("Skipped empty range %q", expr))
			continue
		}
		out := splitRangeName(outputDir, input, expr)
		if err := api.TrimFile(input, out, selection(planPages(plans[next])), nil); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", filepath.Base(out), err)
		}
		next++
		outputs = append(outputs, out)
		progress.Report(i+1, len(exprs), fmt.Sprintf("Created file for pages %s", expr))
	}

	progress.Report(len(exprs), len(exprs),
		fmt.Sprintf("Successfully created %d files", len(outputs)))
	return outputs, nil
}

// Rotate rotates the pages selected by rangeExpr by angle degrees and
// writes the full document, unselected pages unchanged, to output.
func Rotate(input, rangeExpr string, angle int, output string, progress plan.ProgressFunc) error {
	switch angle {
	case 90, 180, 270, -90, -180, -270:
	default:
		return fmt.Errorf("rotation must be 90, 180, or 270 degrees, got %d", angle)
	}

	total, err := PageCount(input)
	if err != nil {
		return err
	}
	pages, err := pagerange.Parse(rangeExpr, total)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages selected for rotation")
	}

	progress.Report(0, total, "Rotating pages...")
	if err := ensureParentDir(output); err != nil {
		return err
	}
	if err := api.RotateFile(input, output, angle, selection(pages), nil); err != nil {
		return fmt.Errorf("failed to rotate pages: %w", err)
	}

	progress.Report(total, total,
		fmt.Sprintf("Successfully rotated %d pages by %d degrees", len(pages), angle))
	return nil
}

// Watermark stamps text diagonally across every page of the input.
func Watermark(input, text string, opacity float64, output string, progress plan.ProgressFunc) error {
	if text == "" {
		return fmt.Errorf("watermark text cannot be empty")
	}
	if opacity < 0.0 || opacity > 1.0 {
		return fmt.Errorf("opacity must be between 0.0 and 1.0, got %.2f", opacity)
	}

	total, err := PageCount(input)
	if err != nil {
		return err
	}

	progress.Report(0, total, "Adding watermark...")
	desc := fmt.Sprintf("points:%d, opacity:%.2f, rotation:%d",
		WatermarkFontSize, opacity, WatermarkRotation)
	wm, err := api.TextWatermark(text, desc, false, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to create watermark: %w", err)
	}
	if err := ensureParentDir(output); err != nil {
		return err
	}
	if err := api.AddWatermarksFile(input, output, nil, wm, nil); err != nil {
		return fmt.Errorf("failed to add watermark: %w", err)
	}

	progress.Report(total, total,
		fmt.Sprintf("Successfully added watermark to %d pages", total))
	return nil
}

// Compress optimizes the input to reduce its size. Input and output may
// name the same file.
func Compress(input, output string, progress plan.ProgressFunc) error {
	before, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("file not found: %s", input)
	}

	progress.Report(0, 1, "Compressing PDF...")
	if err := ensureParentDir(output); err != nil {
		return err
	}
	if err := api.OptimizeFile(input, output, nil); err != nil {
		return fmt.Errorf("failed to compress PDF: %w", err)
	}

	after, err := os.Stat(output)
	if err != nil {
		return fmt.Errorf("compressed file missing: %w", err)
	}
	ratio := 0.0
	if before.Size() > 0 {
		ratio = (1 - float64(after.Size())/float64(before.Size())) * 100
	}
	progress.Report(1, 1, fmt.Sprintf("Compressed by %.1f%% (%d -> %d bytes)",
		ratio, before.Size(), after.Size()))
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
