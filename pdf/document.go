// Package pdf executes page plans against the pdfcpu codec: merging,
// splitting, extracting, rotating, watermarking, and compressing PDF
// files on disk. Planning itself lives in the plan and pagerange packages.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pdfreader "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DocumentInfo summarizes a PDF file on disk.
type DocumentInfo struct {
	Path      string  `json:"path"`
	Filename  string  `json:"filename"`
	Pages     int     `json:"pages"`
	SizeBytes int64   `json:"size_bytes"`
	SizeMB    float64 `json:"size_mb"`
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF %s: %w", filepath.Base(path), err)
	}
	return ctx.PageCount, nil
}

// Validate checks that path names a readable PDF with at least one page.
func Validate(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("file not found: %s", path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("not a PDF file: %s", path)
	}

	f, r, err := pdfreader.Open(path)
	if err != nil {
		return fmt.Errorf("invalid or corrupted PDF file %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return fmt.Errorf("PDF file is empty: %s", path)
	}
	return nil
}

// Info returns basic information about the PDF at path.
func Info(path string) (*DocumentInfo, error) {
	f, r, err := pdfreader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF info: %w", err)
	}
	defer f.Close()

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF info: %w", err)
	}

	size := fi.Size()
	return &DocumentInfo{
		Path:      path,
		Filename:  filepath.Base(path),
		Pages:     r.NumPage(),
		SizeBytes: size,
		SizeMB:    float64(size) / (1024 * 1024),
	}, nil
}
