package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdf_merger/pdf"
)

var (
	rotateOutput string
	rotatePages  string
	rotateAngle  int
)

var rotateCmd = &cobra.Command{
	Use:   "rotate [input]",
	Short: "Rotate pages in a PDF",
	Long: `Rotate specific pages in a PDF file. Pages outside the selection are
copied through unchanged.

  pdf-merger rotate doc.pdf --angle 90 -o rotated.pdf
  pdf-merger rotate doc.pdf --pages "1-10" --angle 180 -o rotated.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runRotate,
}

func init() {
	rootCmd.AddCommand(rotateCmd)

	rotateCmd.Flags().StringVar(&rotatePages, "pages", "all", "page range to rotate (e.g. \"1-10\" or \"all\")")
	rotateCmd.Flags().IntVar(&rotateAngle, "angle", 0, "rotation angle (90, 180, or 270 degrees)")
	rotateCmd.Flags().StringVarP(&rotateOutput, "output", "o", "", "output PDF file")
	rotateCmd.MarkFlagRequired("angle")
	rotateCmd.MarkFlagRequired("output")
}

func runRotate(cmd *cobra.Command, args []string) error {
	if err := pdf.Rotate(args[0], rotatePages, rotateAngle, rotateOutput, newProgress()); err != nil {
		return fmt.Errorf("rotate failed: %w", err)
	}

	fmt.Printf("✓ Successfully rotated pages, saved to: %s\n", rotateOutput)
	return nil
}
