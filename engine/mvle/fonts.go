package mvle

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/drummonds/goLongPNG/config"
)

// FontSet holds the four faces episode rendering needs: regular and bold
// for Korean text, regular and bold for the CJK ideograph fallback.
type FontSet struct {
	Ko      font.Face
	KoBold  font.Face
	CJK     font.Face
	CJKBold font.Face
}

// pair returns the (korean, cjk) faces for the requested weight
func (s FontSet) pair(bold bool) (ko, cjk font.Face) {
	if bold {
		return s.KoBold, s.CJKBold
	}
	return s.Ko, s.CJK
}

// LoadFonts opens the four faces at the given pixel size. sizePx must
// already include any supersampling factor.
func LoadFonts(paths config.FontPaths, sizePx float64) (FontSet, error) {
	var set FontSet
	var err error

	if set.Ko, err = loadFace(paths.Ko, sizePx); err != nil {
		return FontSet{}, err
	}
	if set.KoBold, err = loadFace(paths.KoBold, sizePx); err != nil {
		return FontSet{}, err
	}
	if set.CJK, err = loadFace(paths.CJK, sizePx); err != nil {
		return FontSet{}, err
	}
	if set.CJKBold, err = loadFace(paths.CJKBold, sizePx); err != nil {
		return FontSet{}, err
	}

	return set, nil
}

// loadFace parses one font file into a face. Collection files (.ttc) fall
// back to the first font in the collection.
func loadFace(path string, sizePx float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read font file %s: %w", path, err)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		collection, collErr := opentype.ParseCollection(data)
		if collErr != nil {
			return nil, fmt.Errorf("unable to parse font file %s: %w", path, err)
		}
		parsed, err = collection.Font(0)
		if err != nil {
			return nil, fmt.Errorf("unable to load font from collection %s: %w", path, err)
		}
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create font face from %s: %w", path, err)
	}
	return face, nil
}
