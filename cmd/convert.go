// Package cmd — convert command.
// Orchestrates one conversion attempt:
// validate → fetch → normalize → capture → paginate → write,
// with the fallback document written when any step after validation fails.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/convopdf/config"
	"github.com/gaurav-prasanna/convopdf/core"
	"github.com/gaurav-prasanna/convopdf/core/fetch"
	"github.com/gaurav-prasanna/convopdf/core/normalize"
	"github.com/gaurav-prasanna/convopdf/core/output"
	"github.com/gaurav-prasanna/convopdf/core/render"
	"github.com/gaurav-prasanna/convopdf/core/share"
)

// Flag variables.
var (
	flagOutputDir  string
	flagConfig     string
	flagText       bool
	flagTimeout    time.Duration
	flagNoSandbox  bool
	flagChromePath string
)

var convertCmd = &cobra.Command{
	Use:   "convert <share-url>",
	Short: "Convert a shared conversation link to a PDF",
	Long: `Convert fetches a publicly shared conversation page, renders it
offscreen, and writes a paginated A4 PDF named conversation-<id>.pdf.

If the page cannot be fetched or rendered, the written PDF contains the
share link and manual-save instructions instead.

Examples:
  convopdf convert https://claude.ai/share/3fa85f64-5717-4562-b3fc-2c963f66afa6
  convopdf convert <share-url> --output_dir ./out
  convopdf convert <share-url> --text`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	convertCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML config overriding link shape and relay endpoints")
	convertCmd.Flags().BoolVar(&flagText, "text", false, "Produce a text-layout PDF instead of a page capture")
	convertCmd.Flags().DurationVar(&flagTimeout, "timeout", 2*time.Minute, "Overall conversion timeout")
	convertCmd.Flags().BoolVar(&flagNoSandbox, "no-sandbox", false, "Disable the Chrome sandbox (needed in Docker)")
	convertCmd.Flags().StringVar(&flagChromePath, "chrome", "", "Path to the Chrome/Chromium executable")
}

func runConvert(cmd *cobra.Command, args []string) error {
	rawURL := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rules, err := share.NewRules(cfg)
	if err != nil {
		return fmt.Errorf("configuring link rules: %w", err)
	}

	var captureOpts []render.CaptureOption
	if flagNoSandbox {
		captureOpts = append(captureOpts, render.WithNoSandbox())
	}
	if flagChromePath != "" {
		captureOpts = append(captureOpts, render.WithChromePath(flagChromePath))
	}

	pipeline := &core.Pipeline{
		Rules:      rules,
		Fetcher:    fetch.New(cfg),
		Normalizer: normalize.New(),
		Capturer:   render.NewCapturer(cfg, captureOpts...),
		Paginator:  render.NewPaginator(),
		Text:       render.NewTextRenderer(),
		Fallback:   render.Fallback,
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	var outcome *core.Outcome
	if flagText {
		outcome, err = pipeline.ConvertText(ctx, rawURL)
	} else {
		outcome, err = pipeline.Convert(ctx, rawURL)
	}
	if err != nil {
		return err
	}

	path, err := writer.Write(outcome.Filename, outcome.PDF)
	if err != nil {
		return err
	}

	if outcome.Fallback {
		fmt.Fprintln(os.Stderr, "! Conversion failed; the PDF contains the share link and manual-save instructions")
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

func loadConfig() (*config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}
