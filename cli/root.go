// Package cli implements the pdf_merger command line interface: merge,
// split, extract, rotate, watermark, compress, info, and serve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "2.0.0"

var quiet bool

var rootCmd = &cobra.Command{
	Use:           "pdf-merger",
	Short:         "Merge, split, rotate, watermark, and compress PDF files",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress messages")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
