package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/imgdup/internal/cli"
	"github.com/jacksmith/imgdup/internal/logging"
	"github.com/jacksmith/imgdup/internal/ops"
	"github.com/jacksmith/imgdup/internal/storage"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Check images against the duplicate store",
	Long: `Check whether an image, or every accepted image in a directory, is
already recorded in the store. The store is never modified.

By default an image only counts as found when its whole encoding appears
in the store. With --partial, fixed-length chunks of the encoding are also
tested, so an image sharing a long enough byte run with a stored image is
reported as found.

Examples:
  imgdup check photo.jpg
  imgdup check ./camera-roll --partial
  imgdup check ./camera-roll --partial --chunk-length=60`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

var (
	checkDir      string
	checkExts     []string
	checkPartial  bool
	checkChunkLen int
)

func init() {
	checkCmd.Flags().StringVarP(&checkDir, "dir", "d", ".", "store directory")
	checkCmd.Flags().StringSliceVarP(&checkExts, "ext", "e", nil, "accepted file extensions for directories (overrides config)")
	checkCmd.Flags().BoolVarP(&checkPartial, "partial", "p", false, "also match fixed-length chunks of the encoding")
	checkCmd.Flags().IntVar(&checkChunkLen, "chunk-length", 0, "chunk length for --partial (overrides config)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(checkDir)
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
	if len(checkExts) > 0 {
		exts = checkExts
	}

	chunkLen := cfg.ChunkLength
	if checkChunkLen != 0 {
		chunkLen = checkChunkLen
	}

	images, err := ops.ResolveImages(args[0], exts)
	if err != nil {
		log.Errorf(err, "failed to resolve %s", args[0])
		return err
	}

	results, stats, err := ops.CheckImages(s, log, images, ops.CheckOptions{
		Partial:     checkPartial,
		ChunkLength: chunkLen,
		Progress:    newProgress(len(images), "Checking images..."),
	})
	if err != nil {
		log.Errorf(err, "check aborted")
		return err
	}

	table := cli.NewTable()
	for _, r := range results {
		switch {
		case r.Found && r.Partial:
			table.AddRow(r.Path, cli.Yellow("found (partial)"))
		case r.Found:
			table.AddRow(r.Path, cli.Green("found"))
		default:
			table.AddRow(r.Path, cli.Red("not found"))
		}
	}
	table.Render(os.Stdout)

	fmt.Printf("%d/%d found\n", stats.Matched, stats.Total)
	return nil
}
