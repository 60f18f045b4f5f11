package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pdf_merger/pdf"
)

var (
	splitOutput       string
	splitPagesPerFile int
	splitByRanges     string
)

var splitCmd = &cobra.Command{
	Use:   "split [input]",
	Short: "Split a PDF into multiple files",
	Long: `Split a PDF file by page count or by page ranges.

  pdf-merger split doc.pdf -o parts/ --pages-per-file 10
  pdf-merger split doc.pdf -o parts/ --by-ranges "1-10,11-20,21-30"`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&splitOutput, "output", "o", "", "output directory")
	splitCmd.Flags().IntVar(&splitPagesPerFile, "pages-per-file", 0, "number of pages per output file")
	splitCmd.Flags().StringVar(&splitByRanges, "by-ranges", "", "split by page ranges (e.g. \"1-10,11-20\")")
	splitCmd.MarkFlagRequired("output")
	splitCmd.MarkFlagsMutuallyExclusive("pages-per-file", "by-ranges")
	splitCmd.MarkFlagsOneRequired("pages-per-file", "by-ranges")
}

func runSplit(cmd *cobra.Command, args []string) error {
	input := args[0]

	var outputs []string
	var err error
	if cmd.Flags().Changed("pages-per-file") {
		outputs, err = pdf.SplitByCount(input, splitPagesPerFile, splitOutput, newProgress())
	} else {
		ranges := strings.Split(splitByRanges, ",")
		for i := range ranges {
			ranges[i] = strings.TrimSpace(ranges[i])
		}
		outputs, err = pdf.SplitByRanges(input, ranges, splitOutput, newProgress())
	}
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	fmt.Printf("✓ Successfully split into %d files in: %s\n", len(outputs), splitOutput)
	return nil
}
