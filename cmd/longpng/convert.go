package main

import (
	"github.com/spf13/cobra"

	"github.com/drummonds/goLongPNG/notify"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.pdf> [output.png]",
	Short: "Convert a PDF into one long PNG image",
	Long: `Convert renders every page of the PDF at the configured zoom factor
(default 2x) and stacks the pages top-to-bottom on a white canvas whose
width is the widest page and whose height is the sum of all page heights.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		outputPath := ""
		if len(args) >= 2 {
			outputPath = args[1]
		}

		opts := engineOptions()
		if width, _ := cmd.Flags().GetInt("width"); width > 0 {
			opts.ResizeWidth = width
		}
		if sigma, _ := cmd.Flags().GetFloat64("sharpen"); sigma > 0 {
			opts.SharpenSigma = sigma
		}
		if zoom, _ := cmd.Flags().GetFloat64("zoom"); zoom > 0 {
			opts.Zoom = zoom
		}

		result, err := convertPDF(inputPath, outputPath, opts)
		if err != nil {
			notifier.Failure(notify.ErrorTitle, notify.FailureMessage(err))
			return err
		}

		notifier.Success(notify.SuccessTitle,
			notify.SuccessMessage(result.OutputPath, result.PageCount, result.Width, result.Height))
		return nil
	},
}

func init() {
	convertCmd.Flags().Float64("zoom", 0, "render scale relative to native page size (default from config, 2.0)")
	convertCmd.Flags().Int("width", 0, "resize the finished image to this width in pixels")
	convertCmd.Flags().Float64("sharpen", 0, "sharpen the finished image with this sigma")

	rootCmd.AddCommand(convertCmd)
}
