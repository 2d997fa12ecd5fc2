// Package main is the entry point for the longpng CLI: it converts PDF and
// .mvle documents into one vertically stacked PNG image. Invoked with bare
// file arguments (drag-and-drop style) it picks the converter from the file
// extension; subcommands expose the individual converters, inspection and
// watch mode.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drummonds/goLongPNG/config"
	"github.com/drummonds/goLongPNG/engine"
	"github.com/drummonds/goLongPNG/engine/mvle"
	"github.com/drummonds/goLongPNG/engine/pdfrender"
	"github.com/drummonds/goLongPNG/notify"
	"github.com/drummonds/goLongPNG/watch"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	cfg      config.Config
	Logger   *slog.Logger
	notifier notify.Notifier
)

// injectGlobals injects all of our globals into their packages
func injectGlobals(logger *slog.Logger) {
	Logger = logger
	config.Logger = logger
	engine.Logger = logger
	watch.Logger = logger
}

// rootCmd converts a single dropped file; the converter is picked from the
// file extension for parity with drag-and-drop use
var rootCmd = &cobra.Command{
	Use:   "longpng [input] [output.png]",
	Short: "Convert a PDF or .mvle file into one long PNG image",
	Long: `longpng renders every page of a PDF (or every block of a .mvle novel
episode) and stacks the results top-to-bottom into a single PNG image.

Run it with just a file argument - or drop a file onto the executable on
Windows - and the output lands next to the input with a .png extension.`,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var logger *slog.Logger
		cfg, logger = config.Setup()
		injectGlobals(logger)
		notifier = notify.New(notify.DetectMode())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			notifier.Success(notify.AppTitle, notify.UsageMessage)
			return nil
		}

		inputPath := args[0]
		outputPath := ""
		if len(args) >= 2 {
			outputPath = args[1]
		}

		var result *engine.Result
		var err error
		switch strings.ToLower(filepath.Ext(inputPath)) {
		case ".pdf":
			result, err = convertPDF(inputPath, outputPath, engineOptions())
		case ".mvle":
			result, err = convertEpisode(inputPath, outputPath)
		default:
			err = fmt.Errorf("unsupported file type: %s", filepath.Ext(inputPath))
			notifier.Failure(notify.ErrorTitle, notify.UnsupportedMessage(filepath.Ext(inputPath)))
			return err
		}

		if err != nil {
			notifier.Failure(notify.ErrorTitle, notify.FailureMessage(err))
			return err
		}

		notifier.Success(notify.SuccessTitle,
			notify.SuccessMessage(result.OutputPath, result.PageCount, result.Width, result.Height))
		return nil
	},
}

// engineOptions builds conversion options from the loaded configuration
func engineOptions() engine.Options {
	return engine.Options{
		Zoom:         cfg.Zoom,
		ResizeWidth:  cfg.ResizeWidth,
		SharpenSigma: cfg.SharpenSigma,
	}
}

// convertPDF runs the PDF pipeline with the configured renderer backend
func convertPDF(inputPath, outputPath string, opts engine.Options) (*engine.Result, error) {
	renderer, err := pdfrender.NewRenderer(cfg.Renderer)
	if err != nil {
		return nil, err
	}
	defer renderer.Close()

	return engine.Convert(renderer, inputPath, outputPath, opts)
}

// convertEpisode runs the .mvle pipeline with the configured fonts
func convertEpisode(inputPath, outputPath string) (*engine.Result, error) {
	opts := mvle.DefaultRenderOptions()
	opts.Width = cfg.EpisodeWidth

	fonts, err := mvle.LoadFonts(cfg.FontPaths, opts.FontSizePx())
	if err != nil {
		return nil, err
	}

	return engine.ConvertEpisode(inputPath, outputPath, fonts, opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
