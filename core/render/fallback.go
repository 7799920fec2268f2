// Fallback generator: a minimal single-page PDF produced when any
// upstream pipeline step fails irrecoverably. It has no external
// dependencies — no network, no rendering surface — and cannot fail.
package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// fallbackInstructions are the fixed manual-save steps shown in the
// fallback document.
var fallbackInstructions = []string{
	"The conversation could not be converted automatically.",
	"",
	"To save it as a PDF yourself:",
	"  1. Open the link above in your browser.",
	"  2. Use the browser's print function (Ctrl+P or Cmd+P).",
	"  3. Choose \"Save as PDF\" as the destination.",
	"",
	"You can also retry the conversion later; the page may have been",
	"temporarily unavailable.",
}

// Fallback builds the instructional PDF for a share URL.
func Fallback(shareURL string) []byte {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, "Conversation unavailable", "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+shareURL, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range fallbackInstructions {
		if line == "" {
			pdf.Ln(3)
			continue
		}
		pdf.MultiCell(0, 5.5, line, "", "L", false)
	}

	// Static content only; gofpdf cannot fail here.
	var buf bytes.Buffer
	_ = pdf.Output(&buf)
	return buf.Bytes()
}
