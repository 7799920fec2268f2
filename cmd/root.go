// Package cmd implements the CLI commands for Convopdf using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "convopdf",
	Short: "Convopdf — save a shared conversation as a paginated PDF",
	Long: `Convopdf converts a publicly shared conversation page into an A4 PDF.
If the page cannot be fetched or rendered, a fallback PDF with the share
link and manual-save instructions is produced instead.

Usage:
  convopdf convert <share-url> [flags]`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}
