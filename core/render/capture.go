// Package render materializes normalized documents as raster images and
// assembles the paginated and fallback PDF outputs.
//
// This file implements the offscreen capture step on headless Chrome.
// The capture surface is acquired per attempt and torn down on every
// exit path.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/gaurav-prasanna/convopdf/config"
	"github.com/gaurav-prasanna/convopdf/core"
)

// CaptureOption configures a ChromeCapturer.
type CaptureOption func(*ChromeCapturer)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default standard locations are searched automatically.
func WithChromePath(path string) CaptureOption {
	return func(c *ChromeCapturer) {
		c.chromePath = path
	}
}

// WithNoSandbox disables the Chrome sandbox. Required when running as
// root, for example inside Docker containers.
func WithNoSandbox() CaptureOption {
	return func(c *ChromeCapturer) {
		c.noSandbox = true
	}
}

// ChromeCapturer rasterizes documents in a headless browser tab.
type ChromeCapturer struct {
	cfg        *config.Config
	chromePath string
	noSandbox  bool
}

// NewCapturer creates a ChromeCapturer using the timeouts, viewport
// width, and scale factor from the configuration.
func NewCapturer(cfg *config.Config, opts ...CaptureOption) *ChromeCapturer {
	c := &ChromeCapturer{cfg: cfg}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Capture loads doc into an invisible surface, waits for load completion
// bounded by the render timeout plus a short settle delay, and captures
// a full-page PNG at the configured supersampling scale. The capture
// background is opaque white so transparent regions do not rasterize
// as black. Failure is reported as a *core.RenderError.
func (c *ChromeCapturer) Capture(ctx context.Context, doc string) (*core.CapturedImage, error) {
	// The document is served from a temp file; chromedp navigates real
	// URLs, not raw markup.
	f, err := os.CreateTemp("", "convopdf-*.html")
	if err != nil {
		return nil, &core.RenderError{Err: fmt.Errorf("creating temp file: %w", err)}
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(doc); err != nil {
		f.Close()
		return nil, &core.RenderError{Err: fmt.Errorf("writing temp file: %w", err)}
	}
	if err := f.Close(); err != nil {
		return nil, &core.RenderError{Err: fmt.Errorf("closing temp file: %w", err)}
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, &core.RenderError{Err: fmt.Errorf("resolving path: %w", err)}
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", "new"),
	)
	if c.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(c.chromePath))
	}
	if c.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	if c.cfg.RenderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RenderTimeout)
		defer cancel()
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	defer tabCancel()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		emulation.SetDefaultBackgroundColorOverride().
			WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}),
		chromedp.EmulateViewport(c.cfg.ViewportWidth, 900,
			chromedp.EmulateScale(c.cfg.ScaleFactor)),
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(c.cfg.SettleDelay),
		chromedp.FullScreenshot(&buf, 100),
	); err != nil {
		return nil, &core.RenderError{Err: err}
	}

	img, err := png.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return nil, &core.RenderError{Err: fmt.Errorf("decoding capture: %w", err)}
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, &core.RenderError{Err: fmt.Errorf("capture has degenerate dimensions %dx%d", img.Width, img.Height)}
	}

	return &core.CapturedImage{PNG: buf, Width: img.Width, Height: img.Height}, nil
}
