// Paginator: slices a captured image into fixed-size A4 pages.
//
// The strategy is a moving window over one large image: every page
// draws the same full image, vertically offset by -(index × page
// height), so each page canvas clips out a different slice. The image
// is never re-sliced into separate bitmaps.
package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/convopdf/core"
)

// A4 portrait, in millimetres. Pages are full-bleed: the image is
// scaled to fill the page width.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
)

// A4Paginator assembles the paginated PDF from a captured image.
type A4Paginator struct{}

// NewPaginator creates an A4Paginator.
func NewPaginator() *A4Paginator {
	return &A4Paginator{}
}

// PageCount returns ceil(contentHeight / pageHeight), never less than
// one. Content whose height is an exact multiple of the page height
// gets no trailing blank page.
func PageCount(contentHeight, pageHeight float64) int {
	if contentHeight <= 0 || pageHeight <= 0 {
		return 1
	}
	// The epsilon absorbs float error so exact multiples don't round up.
	n := int(math.Ceil(contentHeight/pageHeight - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

// pageOffset is the vertical placement of the full image on page index.
func pageOffset(index int) float64 {
	return -float64(index) * PageHeightMM
}

// Paginate builds the multi-page PDF. It errors only on degenerate
// input, which indicates a precondition violation upstream; a valid
// CapturedImage always paginates.
func (p *A4Paginator) Paginate(img *core.CapturedImage) ([]byte, error) {
	if img == nil || len(img.PNG) == 0 {
		return nil, fmt.Errorf("paginate: empty capture")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("paginate: invalid capture dimensions %dx%d", img.Width, img.Height)
	}

	scaledHeight := float64(img.Height) * PageWidthMM / float64(img.Width)
	pages := PageCount(scaledHeight, PageHeightMM)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("capture", opts, bytes.NewReader(img.PNG))

	for i := 0; i < pages; i++ {
		pdf.AddPage()
		pdf.ImageOptions("capture", 0, pageOffset(i), PageWidthMM, scaledHeight, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("paginate: %w", err)
	}
	return buf.Bytes(), nil
}
