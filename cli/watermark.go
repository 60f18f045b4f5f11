package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdf_merger/pdf"
)

var (
	watermarkOutput  string
	watermarkText    string
	watermarkOpacity float64
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark [input]",
	Short: "Add a text watermark to a PDF",
	Long: `Add a diagonal text watermark to all pages of a PDF.

  pdf-merger watermark doc.pdf --text "CONFIDENTIAL" -o stamped.pdf
  pdf-merger watermark doc.pdf --text "DRAFT" --opacity 0.5 -o stamped.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runWatermark,
}

func init() {
	rootCmd.AddCommand(watermarkCmd)

	watermarkCmd.Flags().StringVar(&watermarkText, "text", "", "watermark text")
	watermarkCmd.Flags().Float64Var(&watermarkOpacity, "opacity", pdf.DefaultWatermarkOpacity,
		"watermark opacity (0.0 to 1.0)")
	watermarkCmd.Flags().StringVarP(&watermarkOutput, "output", "o", "", "output PDF file")
	watermarkCmd.MarkFlagRequired("text")
	watermarkCmd.MarkFlagRequired("output")
}

func runWatermark(cmd *cobra.Command, args []string) error {
	if err := pdf.Watermark(args[0], watermarkText, watermarkOpacity, watermarkOutput, newProgress()); err != nil {
		return fmt.Errorf("watermark failed: %w", err)
	}

	fmt.Printf("✓ Successfully added watermark, saved to: %s\n", watermarkOutput)
	return nil
}
