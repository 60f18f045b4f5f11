package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdf_merger/pdf"
)

var (
	extractOutput string
	extractPages  string
)

var extractCmd = &cobra.Command{
	Use:   "extract [input]",
	Short: "Extract specific pages from a PDF",
	Long: `Extract specific pages from a PDF file into a new PDF.

  pdf-merger extract doc.pdf --pages "1-5,10,15-20" -o excerpt.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&extractPages, "pages", "", "page range to extract (e.g. \"1-5,10,15-20\")")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output PDF file")
	extractCmd.MarkFlagRequired("pages")
	extractCmd.MarkFlagRequired("output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	if err := pdf.ExtractPages(args[0], extractPages, extractOutput, newProgress()); err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	fmt.Printf("✓ Successfully extracted pages to: %s\n", extractOutput)
	return nil
}
