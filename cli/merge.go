package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pdf_merger/pdf"
)

var (
	mergeOutput   string
	mergePages    []string
	mergeCompress bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [files...]",
	Short: "Merge multiple PDF files",
	Long: `Merge multiple PDF files into a single PDF with optional page selection.

Page ranges are given with --pages, either once per input file in order,
or prefixed with the file name:

  pdf-merger merge a.pdf b.pdf -o out.pdf
  pdf-merger merge a.pdf b.pdf -o out.pdf --pages 1-5 --pages all
  pdf-merger merge a.pdf b.pdf -o out.pdf --pages "b.pdf:2-3,7"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "output PDF file")
	mergeCmd.Flags().StringArrayVar(&mergePages, "pages", nil,
		"page range for an input file (e.g. \"1-5,7\" or \"file.pdf:1-5\")")
	mergeCmd.Flags().BoolVar(&mergeCompress, "compress", false, "compress the output PDF")
	mergeCmd.MarkFlagRequired("output")
}

func runMerge(cmd *cobra.Command, args []string) error {
	ranges := make(map[string]string)
	for i, spec := range mergePages {
		if name, expr, found := strings.Cut(spec, ":"); found {
			for _, f := range args {
				if f == name || filepath.Base(f) == name {
					ranges[f] = expr
					break
				}
			}
			continue
		}
		if i < len(args) {
			ranges[args[i]] = spec
		}
	}

	opts := pdf.MergeOptions{Ranges: ranges, Compress: mergeCompress}
	if err := pdf.Merge(args, mergeOutput, opts, newProgress()); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}

	fmt.Printf("✓ Successfully merged %d files to: %s\n", len(args), mergeOutput)
	return nil
}
