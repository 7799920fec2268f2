package render

import (
	"strings"
	"testing"
)

func TestFallback_ProducesSinglePagePDF(t *testing.T) {
	data := Fallback("https://claude.ai/share/3fa85f64-5717-4562-b3fc-2c963f66afa6")

	if !isPDF(data) {
		t.Fatal("fallback output is not a PDF")
	}
	if got := pdfPageCount(data); got != 1 {
		t.Errorf("fallback page count = %d, want 1", got)
	}
}

func TestFallback_NeverEmpty(t *testing.T) {
	// The generator has no failure mode, even on odd input.
	for _, link := range []string{"", "https://claude.ai/share/x", strings.Repeat("a", 500)} {
		if data := Fallback(link); !isPDF(data) {
			t.Errorf("Fallback(%.20q) did not produce a PDF", link)
		}
	}
}

func TestFallbackInstructions_MentionManualSave(t *testing.T) {
	joined := strings.Join(fallbackInstructions, "\n")
	for _, want := range []string{"print", "Save as PDF", "retry"} {
		if !strings.Contains(joined, want) {
			t.Errorf("instructions missing %q", want)
		}
	}
}
