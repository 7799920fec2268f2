package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gaurav-prasanna/convopdf/core"
)

// testCapture builds a real PNG capture of the given pixel dimensions.
func testCapture(t *testing.T, width, height int) *core.CapturedImage {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test PNG: %v", err)
	}
	return &core.CapturedImage{PNG: buf.Bytes(), Width: width, Height: height}
}

// pdfPageCount counts page objects in a rendered PDF. Object
// dictionaries are written uncompressed, so the /Type entries are
// directly countable; the single /Type /Pages parent is excluded.
func pdfPageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func isPDF(data []byte) bool {
	return len(data) > 4 && string(data[:5]) == "%PDF-"
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name    string
		content float64
		page    float64
		want    int
	}{
		{"shorter than one page", 148.5, 297, 1},
		{"exactly one page", 297, 297, 1},
		{"exact multiple, no trailing blank", 297 * 3, 297, 3},
		{"3.4 pages rounds up to 4", 297 * 3.4, 297, 4},
		{"just over one page", 298, 297, 2},
		{"zero content", 0, 297, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageCount(tt.content, tt.page); got != tt.want {
				t.Errorf("PageCount(%v, %v) = %d, want %d", tt.content, tt.page, got, tt.want)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	if got := pageOffset(0); got != 0 {
		t.Errorf("pageOffset(0) = %v, want 0", got)
	}
	if got := pageOffset(1); got != -PageHeightMM {
		t.Errorf("pageOffset(1) = %v, want %v", got, -PageHeightMM)
	}
	if got := pageOffset(3); got != -3*PageHeightMM {
		t.Errorf("pageOffset(3) = %v, want %v", got, -3*PageHeightMM)
	}
}

func TestPaginate_SinglePage(t *testing.T) {
	p := NewPaginator()
	// 800x600 px scales to 210x157.5 mm, under one page height.
	data, err := p.Paginate(testCapture(t, 800, 600))
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if !isPDF(data) {
		t.Fatal("output is not a PDF")
	}
	if got := pdfPageCount(data); got != 1 {
		t.Errorf("page count = %d, want 1", got)
	}
}

func TestPaginate_MultiPage(t *testing.T) {
	p := NewPaginator()
	// Width 210 px maps 1:1 to page width in mm, so 1010 px of height
	// is ~3.4 page heights: 4 pages.
	data, err := p.Paginate(testCapture(t, 210, 1010))
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if got := pdfPageCount(data); got != 4 {
		t.Errorf("page count = %d, want 4", got)
	}
}

func TestPaginate_ExactMultipleNoBlankPage(t *testing.T) {
	p := NewPaginator()
	// 210x594 px scales to exactly two page heights.
	data, err := p.Paginate(testCapture(t, 210, 594))
	if err != nil {
		t.Fatalf("Paginate: %v", err)
	}
	if got := pdfPageCount(data); got != 2 {
		t.Errorf("page count = %d, want 2 (no trailing blank page)", got)
	}
}

func TestPaginate_DegenerateInput(t *testing.T) {
	p := NewPaginator()

	if _, err := p.Paginate(nil); err == nil {
		t.Error("Paginate(nil) did not error")
	}
	if _, err := p.Paginate(&core.CapturedImage{}); err == nil {
		t.Error("Paginate of empty capture did not error")
	}
	if _, err := p.Paginate(&core.CapturedImage{PNG: []byte("x"), Width: 0, Height: 10}); err == nil {
		t.Error("Paginate of zero-width capture did not error")
	}
}
