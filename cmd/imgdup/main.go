// Package main is the entry point for the imgdup CLI.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jacksmith/imgdup/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: I/O and store-write
// failures exit 2, usage and validation problems exit 1.
func exitCode(err error) int {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return 2
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:   "imgdup",
	Short: "imgdup - flag images and check for duplicates by content",
	Long: `imgdup records base64 encodings of image files in a flat text store
and checks new images against it.

A check matches exactly against whole stored encodings, or with --partial
against fixed-length chunks of the encoding, so content shared with a
stored image is caught even when the files are not identical.`,
	Version: Version,
	// Show help when no subcommand is provided
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Set version template
	rootCmd.SetVersionTemplate("imgdup version {{.Version}}\n")
}
