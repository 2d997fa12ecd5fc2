package main

import (
	"github.com/spf13/cobra"

	"github.com/drummonds/goLongPNG/notify"
)

var episodeCmd = &cobra.Command{
	Use:   "episode <input.mvle> [output.png]",
	Short: "Render a .mvle novel episode into one long PNG image",
	Long: `Episode renders a .mvle JSON episode file as a long image: the text is
wrapped to the output width with per-character Korean/CJK font fallback,
drawn at 2x supersampling and downscaled for crisp glyphs.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := args[0]
		outputPath := ""
		if len(args) >= 2 {
			outputPath = args[1]
		}

		result, err := convertEpisode(inputPath, outputPath)
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
	rootCmd.AddCommand(episodeCmd)
}
