package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pdf_merger/pdf"
)

var infoCmd = &cobra.Command{
	Use:   "info [input]",
	Short: "Show information about a PDF file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	info, err := pdf.Info(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("File:  %s\n", info.Filename)
	fmt.Printf("Pages: %d\n", info.Pages)
	fmt.Printf("Size:  %.2f MB (%d bytes)\n", info.SizeMB, info.SizeBytes)
	return nil
}
