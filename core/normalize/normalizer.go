// Package normalize implements the Normalizer interface.
// It extracts the conversation-bearing region from the raw page markup
// and rewraps it in a minimal standalone document with deterministic
// styling. Normalize is total: when no known region is found (or the
// markup does not parse), the entire raw payload is wrapped instead,
// with a degraded framing class.
package normalize

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// regionSelectors are tried in order; the first match wins.
// <main> is the semantically correct container on the share page,
// <article> covers older page revisions.
var regionSelectors = []string{
	`[data-testid="conversation"]`,
	"main",
	"article",
}

// documentStyle is the fixed styling injected into every normalized
// document: role-based message framing, wrapped code blocks, and
// embedded media capped to the container width.
const documentStyle = `
  body {
    margin: 0 auto;
    padding: 24px;
    max-width: 1200px;
    background: #ffffff;
    color: #1a1a1a;
    font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif;
    line-height: 1.55;
  }
  .message,
  [data-message-author-role] {
    border: 1px solid #e3e3e3;
    border-radius: 8px;
    padding: 12px 16px;
    margin: 12px 0;
  }
  .user-message,
  [data-message-author-role="user"] {
    background: #eef3fb;
  }
  .assistant-message,
  [data-message-author-role="assistant"] {
    background: #ffffff;
  }
  pre {
    background: #f5f5f5;
    border-radius: 6px;
    padding: 10px 12px;
    white-space: pre-wrap;
    word-break: break-word;
    overflow-x: hidden;
  }
  code {
    font-family: "SF Mono", Menlo, Consolas, monospace;
    font-size: 0.92em;
  }
  img {
    max-width: 100%;
    height: auto;
  }
  .raw-page {
    padding: 8px;
  }
`

// HTMLNormalizer rewraps raw markup into a self-contained document.
type HTMLNormalizer struct{}

// New creates an HTMLNormalizer.
func New() *HTMLNormalizer {
	return &HTMLNormalizer{}
}

// Fragment returns the inner content of the first matching conversation
// region, or false when no region is found or the markup does not parse.
func (n *HTMLNormalizer) Fragment(html string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	for _, sel := range regionSelectors {
		region := doc.Find(sel)
		if region.Length() == 0 {
			continue
		}
		inner, err := region.First().Html()
		if err != nil || strings.TrimSpace(inner) == "" {
			continue
		}
		return inner, true
	}
	return "", false
}

// Normalize returns a complete standalone document. The conversation
// fragment is wrapped when one is found; otherwise the full raw payload
// is wrapped as a degraded-but-styled last resort.
func (n *HTMLNormalizer) Normalize(html string) string {
	if fragment, ok := n.Fragment(html); ok {
		return wrap(fragment, "conversation")
	}
	return wrap(html, "raw-page")
}

// wrap builds the document shell around a content fragment.
func wrap(content, frameClass string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>%s</style>
</head>
<body>
<div class=%q>
%s
</div>
</body>
</html>`, documentStyle, frameClass, content)
}
