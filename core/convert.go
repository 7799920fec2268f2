package core

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/convopdf/core/share"
)

// FilenamePrefix is the deterministic prefix of every produced file.
const FilenamePrefix = "conversation"

// Pipeline wires the conversion stages together. A conversion attempt
// runs the stages strictly in order; every post-validation failure is
// swallowed and converted into a fallback Outcome, so the caller's
// contract is "real content or fallback content", never a failure past
// the validation gate.
type Pipeline struct {
	Rules      *share.Rules
	Fetcher    Fetcher
	Normalizer Normalizer
	Capturer   Capturer
	Paginator  Paginator
	Text       DocRenderer
	Fallback   FallbackFunc
}

// Convert runs the full raster pipeline for rawURL. It returns
// ErrInvalidLink when the input fails shape validation — no fallback is
// produced then, since there is no identifier to reconstruct a link
// from. Otherwise it always returns an Outcome.
func (p *Pipeline) Convert(ctx context.Context, rawURL string) (*Outcome, error) {
	ref, ok := p.Rules.Parse(rawURL)
	if !ok {
		return nil, ErrInvalidLink
	}
	link := p.Rules.ShareURL(ref.ID)

	result, err := p.Fetcher.Fetch(ctx, link)
	if err != nil {
		logrus.WithError(err).Warn("fetch failed, producing fallback document")
		return p.fallbackOutcome(ref.ID, link), nil
	}

	doc := p.Normalizer.Normalize(result.HTML)

	img, err := p.Capturer.Capture(ctx, doc)
	if err != nil {
		logrus.WithError(err).Warn("render failed, producing fallback document")
		return p.fallbackOutcome(ref.ID, link), nil
	}

	pdf, err := p.Paginator.Paginate(img)
	if err != nil {
		// A valid capture always paginates; reaching this branch means
		// an upstream precondition was violated.
		logrus.WithError(err).Error("pagination failed on a captured image, producing fallback document")
		return p.fallbackOutcome(ref.ID, link), nil
	}

	return &Outcome{PDF: pdf, Filename: filename(ref.ID)}, nil
}

// ConvertText runs the text-mode pipeline: fetch, extract the
// conversation fragment, and lay it out as a text PDF with no
// rasterization. The fallback policy is the same as Convert's.
func (p *Pipeline) ConvertText(ctx context.Context, rawURL string) (*Outcome, error) {
	ref, ok := p.Rules.Parse(rawURL)
	if !ok {
		return nil, ErrInvalidLink
	}
	link := p.Rules.ShareURL(ref.ID)

	result, err := p.Fetcher.Fetch(ctx, link)
	if err != nil {
		logrus.WithError(err).Warn("fetch failed, producing fallback document")
		return p.fallbackOutcome(ref.ID, link), nil
	}

	fragment, ok := p.Normalizer.Fragment(result.HTML)
	if !ok {
		fragment = result.HTML
	}

	pdf, err := p.Text.Render(fragment, link)
	if err != nil {
		logrus.WithError(err).Warn("text render failed, producing fallback document")
		return p.fallbackOutcome(ref.ID, link), nil
	}

	return &Outcome{PDF: pdf, Filename: filename(ref.ID)}, nil
}

func (p *Pipeline) fallbackOutcome(id, link string) *Outcome {
	return &Outcome{
		PDF:      p.Fallback(link),
		Fallback: true,
		Filename: filename(id),
	}
}

func filename(id string) string {
	return FilenamePrefix + "-" + id + ".pdf"
}
