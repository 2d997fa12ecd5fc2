package engine

import (
	"errors"

	"github.com/drummonds/goLongPNG/engine/mvle"
)

// ConvertEpisode renders the .mvle file at inputPath into one long PNG at
// outputPath (DefaultOutputPath when empty). The returned Result carries the
// episode block count in PageCount.
func ConvertEpisode(inputPath, outputPath string, fonts mvle.FontSet, opts mvle.RenderOptions) (*Result, error) {
	if outputPath == "" {
		outputPath = DefaultOutputPath(inputPath)
	}

	ep, err := mvle.Load(inputPath)
	if err != nil {
		Logger.Error("Unable to load episode file", "inputPath", inputPath, "error", err)
		return nil, err
	}
	Logger.Info("Episode opened",
		"inputPath", inputPath,
		"novel", ep.Novel.Title,
		"episode", ep.Title,
		"blocks", len(ep.Blocks))

	img, err := mvle.Render(ep, fonts, opts)
	if err != nil {
		if errors.Is(err, mvle.ErrNoBlocks) {
			Logger.Error("Episode has no blocks", "inputPath", inputPath)
			return nil, ErrEmptyDocument
		}
		Logger.Error("Unable to render episode", "inputPath", inputPath, "error", err)
		return nil, err
	}

	if err := savePNG(outputPath, img); err != nil {
		Logger.Error("Unable to save output image", "outputPath", outputPath, "error", err)
		return nil, err
	}

	bounds := img.Bounds()
	result := &Result{
		OutputPath: outputPath,
		PageCount:  len(ep.Blocks),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}
	Logger.Info("Successfully converted episode to long PNG",
		"outputPath", outputPath,
		"blocks", result.PageCount,
		"width", result.Width,
		"height", result.Height)
	return result, nil
}
