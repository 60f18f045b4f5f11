package api

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	pdfPkg "pdf_merger/pdf"
	"pdf_merger/plan"
)

// HandleMerge merges the uploaded "pdfs" files in order. The "pages"
// form field may be repeated, one full range expression per file in
// upload order (commas belong to the expression, e.g. "1-5,7");
// "compress" requests an optimize pass on the merged output.
func (s *Server) HandleMerge(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}
	uploads := form.File["pdfs"]
	if len(uploads) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least 2 PDF files are required for merging"})
		return
	}

	if err := ensureTempDir(s.cfg.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return
	}

	uniqueID := generateUniqueID()
	inputs := make([]string, 0, len(uploads))
	cleanup := func() {
		go func() {
			time.Sleep(FileCleanupDelay)
			for _, f := range inputs {
				os.Remove(f)
			}
		}()
	}

	for i, upload := range uploads {
		if err := validateUpload(upload, s.cfg.MaxFileSize); err != nil {
			cleanup()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		inFile := filepath.Join(s.cfg.TempDir,
			fmt.Sprintf("merge_%s_%d_%s", uniqueID, i, sanitizeFilename(upload.Filename)))
		if err := saveUpload(upload, inFile); err != nil {
			cleanup()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save input file"})
			return
		}
		inputs = append(inputs, inFile)
	}

	opts := pdfPkg.MergeOptions{
		Compress: c.PostForm("compress") == "true",
		Ranges:   mergeRanges(inputs, form.Value["pages"]),
	}

	outFile := filepath.Join(s.cfg.TempDir, "merged_"+uniqueID+".pdf")
	if err := pdfPkg.Merge(inputs, outFile, opts, s.progress()); err != nil {
		cleanup()
		s.log.Error("merge failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": operationError(err)})
		return
	}

	s.sendPDF(c, outFile, "merged.pdf")
	defer cleanup()
	defer s.removeLater(outFile)
}

func (s *Server) HandleExtract(c *gin.Context) {
	pages := c.PostForm("pages")
	if pages == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No pages specified"})
		return
	}

	s.handlePDFFile(c, func(inFile, outFile string) error {
		return pdfPkg.ExtractPages(inFile, pages, outFile, s.progress())
	}, "extracted")
}

// HandleSplit splits the uploaded PDF either into fixed-size chunks
// ("pages_per_file") or by explicit range expressions ("ranges",
// comma-separated) and returns the parts as a zip archive.
func (s *Server) HandleSplit(c *gin.Context) {
	pagesPerFile := c.PostForm("pages_per_file")
	rangesParam := c.PostForm("ranges")
	if pagesPerFile == "" && rangesParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Specify pages_per_file or ranges"})
		return
	}

	inFile, name, ok := s.saveSingleUpload(c, "split")
	if !ok {
		return
	}
	defer s.removeLater(inFile)

	outDir := strings.TrimSuffix(inFile, ".pdf") + "_parts"
	var outputs []string
	var err error
	if pagesPerFile != "" {
		n, convErr := strconv.Atoi(pagesPerFile)
		if convErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pages_per_file must be an integer"})
			return
		}
		outputs, err = pdfPkg.SplitByCount(inFile, n, outDir, s.progress())
	} else {
		ranges := strings.Split(rangesParam, ",")
		for i := range ranges {
			ranges[i] = strings.TrimSpace(ranges[i])
		}
		outputs, err = pdfPkg.SplitByRanges(inFile, ranges, outDir, s.progress())
	}
	if err != nil {
		s.log.Error("split failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": operationError(err)})
		return
	}
	defer func() {
		go func() {
			time.Sleep(FileCleanupDelay)
			os.RemoveAll(outDir)
		}()
	}()

	buf, err := zipFiles(outputs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to package split files"})
		return
	}

	zipName := strings.TrimSuffix(sanitizeFilename(name), ".pdf") + "_split.zip"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", zipName))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}

func (s *Server) HandleRotate(c *gin.Context) {
	angleParam := c.PostForm("angle")
	if angleParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No rotation angle specified"})
		return
	}
	angle, err := strconv.Atoi(angleParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "angle must be an integer"})
		return
	}
	pages := c.PostForm("pages")
	if pages == "" {
		pages = "all"
	}

	s.handlePDFFile(c, func(inFile, outFile string) error {
		return pdfPkg.Rotate(inFile, pages, angle, outFile, s.progress())
	}, "rotated")
}

func (s *Server) HandleWatermark(c *gin.Context) {
	text := c.PostForm("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No watermark text specified"})
		return
	}
	opacity := pdfPkg.DefaultWatermarkOpacity
	if op := c.PostForm("opacity"); op != "" {
		parsed, err := strconv.ParseFloat(op, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "opacity must be a number"})
			return
		}
		opacity = parsed
	}

	s.handlePDFFile(c, func(inFile, outFile string) error {
		return pdfPkg.Watermark(inFile, text, opacity, outFile, s.progress())
	}, "watermarked")
}

func (s *Server) HandleCompress(c *gin.Context) {
	s.handlePDFFile(c, func(inFile, outFile string) error {
		return pdfPkg.Compress(inFile, outFile, s.progress())
	}, "compressed")
}

func (s *Server) HandleInfo(c *gin.Context) {
	inFile, name, ok := s.saveSingleUpload(c, "info")
	if !ok {
		return
	}
	defer s.removeLater(inFile)

	info, err := pdfPkg.Info(inFile)
	if err != nil {
		s.log.Error("info failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": operationError(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filename":   name,
		"pages":      info.Pages,
		"size_bytes": info.SizeBytes,
		"size_mb":    fmt.Sprintf("%.2f", info.SizeMB),
	})
}

// handlePDFFile runs a single-input single-output operation over the
// uploaded "pdf" file and returns the result for download.
func (s *Server) handlePDFFile(c *gin.Context, operation func(string, string) error, suffix string) {
	inFile, name, ok := s.saveSingleUpload(c, suffix)
	if !ok {
		return
	}

	outFile := strings.TrimSuffix(inFile, ".pdf") + "_" + suffix + ".pdf"
	if err := operation(inFile, outFile); err != nil {
		os.Remove(inFile)
		if _, statErr := os.Stat(outFile); statErr == nil {
			os.Remove(outFile)
		}
		s.log.Error("PDF operation failed", zap.String("operation", suffix), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": operationError(err)})
		return
	}

	if _, err := os.Stat(outFile); os.IsNotExist(err) {
		os.Remove(inFile)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF operation did not produce output file"})
		return
	}

	downloadName := "document_" + suffix + ".pdf"
	if name != "" {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		downloadName = sanitizeFilename(base + "_" + suffix + ".pdf")
	}
	s.sendPDF(c, outFile, downloadName)

	defer s.removeLater(inFile)
	defer s.removeLater(outFile)
}

// saveSingleUpload validates and stores the "pdf" form file, returning
// the temp path and the original filename. On failure it writes the
// error response itself and returns ok == false.
func (s *Server) saveSingleUpload(c *gin.Context, suffix string) (path, name string, ok bool) {
	upload, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return "", "", false
	}
	if err := validateUpload(upload, s.cfg.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", "", false
	}
	if err := ensureTempDir(s.cfg.TempDir); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create temp directory"})
		return "", "", false
	}

	inFile := filepath.Join(s.cfg.TempDir, suffix+"_"+generateUniqueID()+".pdf")
	if err := saveUpload(upload, inFile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save input file"})
		return "", "", false
	}
	return inFile, upload.Filename, true
}

func (s *Server) sendPDF(c *gin.Context, path, downloadName string) {
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	c.File(path)
}

// removeLater deletes a temp file after the response has been sent.
func (s *Server) removeLater(path string) {
	go func() {
		time.Sleep(FileCleanupDelay)
		os.Remove(path)
	}()
}

// progress adapts operation progress events into debug logs.
func (s *Server) progress() plan.ProgressFunc {
	return func(current, total int, message string) {
		s.log.Debug("operation progress",
			zap.Int("current", current),
			zap.Int("total", total),
			zap.String("message", message))
	}
}

// mergeRanges pairs repeated "pages" form values with the inputs in
// upload order. A value is one complete range expression, commas
// included; empty values leave the matching input unrestricted, and
// surplus values are ignored.
func mergeRanges(inputs, pages []string) map[string]string {
	ranges := make(map[string]string)
	for i, input := range inputs {
		if i >= len(pages) {
			break
		}
		if expr := strings.TrimSpace(pages[i]); expr != "" {
			ranges[input] = expr
		}
	}
	return ranges
}

// operationError trims long codec errors for the response body.
func operationError(err error) string {
	msg := err.Error()
	if msg == "" {
		return "PDF operation failed"
	}
	if len(msg) > 200 {
		return msg[:200] + "..."
	}
	return msg
}

func zipFiles(paths []string) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		entry, err := zw.Create(filepath.Base(path))
		if err != nil {
			f.Close()
			return nil, err
		}
		if _, err := io.Copy(entry, f); err != nil {
			f.Close()
			return nil, err
		}
		f.Close()
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return &buf, nil
}

// ensureTempDir creates the temp directory if it doesn't exist
func ensureTempDir(tempDir string) error {
	return os.MkdirAll(tempDir, DefaultFilePermissions)
}

// sanitizeFilename removes path traversal attempts and dangerous characters
func sanitizeFilename(filename string) string {
	// Base first, so stripping ".." cannot leave separator runs behind
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "/", "_")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = strings.TrimSpace(filename)
	if filename == "" || filename == "." {
		filename = "document.pdf"
	}
	return filename
}

// generateUniqueID generates a unique identifier for temp files
func generateUniqueID() string {
	return uuid.NewString()
}

// validateUpload checks the upload's size and PDF header.
func validateUpload(header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	file, err := header.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	buffer := make([]byte, 4)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file header: %w", err)
	}
	if n < 4 || string(buffer[:4]) != "%PDF" {
		return fmt.Errorf("invalid PDF file: header does not match")
	}
	return nil
}

// saveUpload writes the uploaded file to dst.
func saveUpload(header *multipart.FileHeader, dst string) error {
	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
