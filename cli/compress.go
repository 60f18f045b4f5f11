package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdf_merger/pdf"
)

var compressOutput string

var compressCmd = &cobra.Command{
	Use:   "compress [input]",
	Short: "Compress a PDF file",
	Long: `Reduce PDF file size by optimizing its content streams.

  pdf-merger compress doc.pdf -o smaller.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runCompress,
}

func init() {
	rootCmd.AddCommand(compressCmd)

	compressCmd.Flags().StringVarP(&compressOutput, "output", "o", "", "output PDF file")
	compressCmd.MarkFlagRequired("output")
}

func runCompress(cmd *cobra.Command, args []string) error {
	if err := pdf.Compress(args[0], compressOutput, newProgress()); err != nil {
		return fmt.Errorf("compress failed: %w", err)
	}

	fmt.Printf("✓ Successfully compressed to: %s\n", compressOutput)
	return nil
}
