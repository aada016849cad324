package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/imgdup/internal/cli"
	"github.com/jacksmith/imgdup/internal/logging"
	"github.com/jacksmith/imgdup/internal/ops"
	"github.com/jacksmith/imgdup/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var flagCmd = &cobra.Command{
	Use:   "flag <path>",
	Short: "Record images in the duplicate store",
	Long: `Record the base64 encoding of an image, or of every accepted image in a
directory, in the store. Images whose encoding is already stored are
reported and skipped; the store is never rewritten, only appended to.

Examples:
  imgdup flag photo.jpg
  imgdup flag ./camera-roll
  imgdup flag ./camera-roll --ext=jpg,webp`,
	Args: cobra.ExactArgs(1),
	RunE: runFlag,
}

var (
	flagDir  string
	flagExts []string
)

func init() {
	flagCmd.Flags().StringVarP(&flagDir, "dir", "d", ".", "store directory")
	flagCmd.Flags().StringSliceVarP(&flagExts, "ext", "e", nil, "accepted file extensions for directories (overrides config)")

	rootCmd.AddCommand(flagCmd)
}

func runFlag(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(flagDir)
	if err != nil {
		return err
	}

	log := logging.New(s.LogPath())
	defer log.Close()

	cfg, err := s.LoadConfig()
	if err != nil {
		log.Errorf(err, "failed to load config")
		return err
	}

	exts := cfg.AcceptedExtensions
	if len(flagExts) > 0 {
		exts = flagExts
	}

	images, err := ops.ResolveImages(args[0], exts)
	if err != nil {
		log.Errorf(err, "failed to resolve %s", args[0])
		return err
	}

	results, stats, err := ops.FlagImages(s, log, images, ops.FlagOptions{
		Progress: newProgress(len(images), "Flagging images..."),
	})

	table := cli.NewTable()
	for _, r := range results {
		if r.Stored {
			table.AddRow(r.Path, cli.Green("stored"))
		} else {
			table.AddRow(r.Path, cli.Yellow("already exists"))
		}
	}
	table.Render(os.Stdout)

	if err != nil {
		log.Errorf(err, "flag aborted")
		return err
	}

	fmt.Printf("%d/%d stored\n", stats.Matched, stats.Total)
	return nil
}

// newProgress returns a per-image progress callback rendering to stderr, or
// nil when the batch is trivial or stderr is not a terminal.
func newProgress(total int, description string) func() {
	if total <= 1 || !cli.IsTerminal(os.Stderr) {
		return nil
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
	)
	return func() { bar.Add(1) }
}
