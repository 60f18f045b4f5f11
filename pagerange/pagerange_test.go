package pagerange

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseAll(t *testing.T) {
	for _, total := range []int{0, 1, 5} {
		got, err := Parse("all", total)
		if err != nil {
			t.Fatalf("Parse(all, %d): %v", total, err)
		}
		if len(got) != total {
			t.Fatalf("Parse(all, %d) = %v, want %d pages", total, got, total)
		}
		for i, p := range got {
			if p != i {
				t.Fatalf("Parse(all, %d)[%d] = %d, want %d", total, i, p, i)
			}
		}
	}
}

func TestParseAllVariants(t *testing.T) {
	for _, expr := range []string{"", "  ", "ALL", " All "} {
		got, err := Parse(expr, 3)
		if err != nil {
			t.Fatalf("Parse(%q, 3): %v", expr, err)
		}
		if want := []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
			t.Errorf("Parse(%q, 3) = %v, want %v", expr, got, want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		total int
		want  []int
	}{
		{"3", 5, []int{2}},
		{"2-4", 5, []int{1, 2, 3}},
		{"1-2,4,2-3", 5, []int{0, 1, 2, 3}},
		{"1-5,7,10-12", 12, []int{0, 1, 2, 3, 4, 6, 9, 10, 11}},
		{" 1 - 2 , 4 ", 5, []int{0, 1, 3}},
		{"5,1", 5, []int{0, 4}},
		{"2,2,2", 5, []int{1}},
		{"1-1", 1, []int{0}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.expr, tt.total)
		if err != nil {
			t.Errorf("Parse(%q, %d): %v", tt.expr, tt.total, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q, %d) = %v, want %v", tt.expr, tt.total, got, tt.want)
		}
	}
}

func TestParseBoundsErrors(t *testing.T) {
	tests := []struct {
		expr  string
		total int
	}{
		{"0-3", 5},  // 1-based lower bound violated
		{"4-2", 5},  // inverted pair
		{"6", 5},    // past the end
		{"0", 5},    // below the start
		{"1-6", 5},  // range past the end
		{"99", 10},  // far past the end
		{"1,9", 5},  // valid term followed by invalid
	}

	for _, tt := range tests {
		_, err := Parse(tt.expr, tt.total)
		var boundsErr *BoundsError
		if !errors.As(err, &boundsErr) {
			t.Errorf("Parse(%q, %d) = %v, want BoundsError", tt.expr, tt.total, err)
			continue
		}
		if boundsErr.TotalPages != tt.total {
			t.Errorf("Parse(%q, %d): BoundsError.TotalPages = %d, want %d",
				tt.expr, tt.total, boundsErr.TotalPages, tt.total)
		}
	}
}

func TestParseFormatErrors(t *testing.T) {
	for _, expr := range []string{"x-2", "1-y", "abc", "1,,3", "-", "1-2-3", "-3", "1.5"} {
		_, err := Parse(expr, 5)
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("Parse(%q, 5) = %v, want FormatError", expr, err)
		}
	}
}

func TestParseIdempotent(t *testing.T) {
	first, err := Parse("1-2,4,2-3", 5)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse("1-2,4,2-3", 5)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Parse gave %v then %v", first, second)
	}
}
