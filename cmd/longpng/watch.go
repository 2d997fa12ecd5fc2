package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drummonds/goLongPNG/notify"
	"github.com/drummonds/goLongPNG/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll an ingress folder and convert every document dropped there",
	Long: `Watch scans the ingress folder on an interval and converts each .pdf
and .mvle file into a PNG in the output folder. Files whose output already
exists and is up to date are skipped, so the folder can be left in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ingress, _ := cmd.Flags().GetString("ingress")
		output, _ := cmd.Flags().GetString("output")
		interval, _ := cmd.Flags().GetInt("interval")
		if ingress == "" {
			ingress = cfg.IngressPath
		}
		if output == "" {
			output = cfg.OutputPath
		}
		if interval <= 0 {
			interval = cfg.IngressInterval
		}

		if _, err := os.Stat(ingress); err != nil {
			err = fmt.Errorf("ingress folder not accessible: %w", err)
			notifier.Failure(notify.ErrorTitle, notify.FailureMessage(err))
			return err
		}

		watcher := &watch.Watcher{
			IngressPath: ingress,
			OutputPath:  output,
			Interval:    interval,
			Convert:     convertAny,
		}

		c := watcher.Start()
		fmt.Printf("Watching %s (every %dm), writing PNGs to %s. Ctrl-C to stop.\n",
			ingress, interval, output)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		ctx := c.Stop()
		<-ctx.Done()
		Logger.Info("Watch mode stopped")
		return nil
	},
}

// convertAny dispatches one watched file to the right converter
func convertAny(inputPath, outputPath string) error {
	var err error
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".pdf":
		_, err = convertPDF(inputPath, outputPath, engineOptions())
	case ".mvle":
		_, err = convertEpisode(inputPath, outputPath)
	default:
		err = fmt.Errorf("unsupported file type: %s", filepath.Ext(inputPath))
	}
	return err
}

func init() {
	watchCmd.Flags().String("ingress", "", "folder to poll for documents (default from config)")
	watchCmd.Flags().String("output", "", "folder converted PNGs are written to (default from config)")
	watchCmd.Flags().Int("interval", 0, "minutes between scans (default from config)")

	rootCmd.AddCommand(watchCmd)
}
