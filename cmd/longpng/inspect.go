package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/drummonds/goLongPNG/engine"
	"github.com/drummonds/goLongPNG/engine/pdfrender"
	"github.com/drummonds/goLongPNG/notify"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.pdf>",
	Short: "Report page geometry and projected output size without converting",
	Long: `Inspect opens the PDF and reports the page count, each page's native
size in points, the rendered pixel size at the configured zoom, the canvas
size a conversion would produce, and whether the document carries an
extractable text layer.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := pdfrender.NewRenderer(cfg.Renderer)
		if err != nil {
			notifier.Failure(notify.ErrorTitle, notify.FailureMessage(err))
			return err
		}
		defer renderer.Close()

		report, err := engine.Inspect(renderer, args[0], cfg.Zoom)
		if err != nil {
			notifier.Failure(notify.ErrorTitle, notify.FailureMessage(err))
			return err
		}

		fmt.Printf("%s: %d pages (zoom %.1fx)\n\n", report.Path, report.PageCount, report.Zoom)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PAGE\tNATIVE (pt)\tRENDERED (px)")
		for _, page := range report.Pages {
			fmt.Fprintf(w, "%d\t%.0f x %.0f\t%d x %d\n",
				page.Index+1, page.WidthPt, page.HeightPt, page.WidthPx, page.HeightPx)
		}
		w.Flush()

		fmt.Printf("\nOutput canvas: %d x %d\n", report.CanvasWidth, report.CanvasHeight)
		if report.HasTextLayer {
			fmt.Println("Text layer: yes")
		} else {
			fmt.Println("Text layer: no")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
