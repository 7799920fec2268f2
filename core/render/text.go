// Text-mode renderer: converts the conversation fragment to Markdown
// and lays it out as a styled text PDF, with no rasterization step.
// Headings get variable font sizes; code blocks keep monospace with a
// light background; images are not rendered in this mode.
package render

import (
	"bytes"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/jung-kurt/gofpdf"
)

// TextRenderer produces the --text output: a raster-free PDF built
// from the page text rather than a screen capture.
type TextRenderer struct{}

// NewTextRenderer creates a TextRenderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render converts an HTML fragment into a text-layout PDF. The share
// link is printed as the source header.
func (r *TextRenderer) Render(fragment string, link string) ([]byte, error) {
	markdown, err := htmltomarkdown.ConvertString(fragment)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, "Source: "+link, "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	writeMarkdown(pdf, markdown)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var numberedItem = regexp.MustCompile(`^\d+\.\s`)

// writeMarkdown lays out Markdown line by line: headings, fenced code
// blocks, list items, and plain paragraphs.
func writeMarkdown(pdf *gofpdf.Fpdf, markdown string) {
	inCodeBlock := false

	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, line, "", "L", true)
			continue
		}

		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		if strings.HasPrefix(line, "#") {
			writeHeading(pdf, line)
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "- "), strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, "- "+stripInline(trimmed[2:]), "", "L", false)
		case numberedItem.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, stripInline(trimmed), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, stripInline(line), "", "L", false)
		}
	}
}

// writeHeading sizes the font by heading level and writes the text.
func writeHeading(pdf *gofpdf.Fpdf, line string) {
	level := 0
	for _, ch := range line {
		if ch != '#' {
			break
		}
		level++
	}
	sizes := []float64{18, 15, 13, 12, 11, 10}
	size := 10.0
	if level >= 1 && level <= len(sizes) {
		size = sizes[level-1]
	}

	text := strings.TrimSpace(strings.TrimLeft(line, "# "))
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, stripInline(text), "", "L", false)
	pdf.Ln(2)
}

var (
	italicMarker = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineCode   = regexp.MustCompile("`([^`]+)`")
	mdLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// stripInline removes inline Markdown markers, keeping the text.
func stripInline(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	text = italicMarker.ReplaceAllString(text, " $1 ")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = mdLink.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
