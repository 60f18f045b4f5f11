package pdf

import (
	"path/filepath"
	"testing"
)

func TestSplitPartName(t *testing.T) {
	got := splitPartName("out", "/tmp/report.pdf", 3)
	want := filepath.Join("out", "report_part3.pdf")
	if got != want {
		t.Errorf("splitPartName = %q, want %q", got, want)
	}
}

func TestSplitRangeName(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1-5", "report_pages1-5.pdf"},
		{"1-5,7", "report_pages1-5_7.pdf"},
		{" 1 - 5 , 7 ", "report_pages1-5_7.pdf"},
	}
	for _, tt := range tests {
		got := splitRangeName("out", "report.pdf", tt.expr)
		if want := filepath.Join("out", tt.want); got != want {
			t.Errorf("splitRangeName(%q) = %q, want %q", tt.expr, got, want)
		}
	}
}

func TestStem(t *testing.T) {
	for path, want := range map[string]string{
		"/a/b/doc.pdf": "doc",
		"doc.PDF":      "doc",
		"no_ext":       "no_ext",
	} {
		if got := stem(path); got != want {
			t.Errorf("stem(%q) = %q, want %q", path, got, want)
		}
	}
}
