package mvle

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// isCJK reports whether the rune falls in the CJK Unified Ideographs ranges.
// Hangul is not included: Korean text renders with the Ko faces.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // Extension B
		(r >= 0xF900 && r <= 0xFAFF) || // Compatibility Ideographs
		(r >= 0x2F800 && r <= 0x2FA1F) // Compatibility Supplement
}

// faceFor picks the face for one rune: the CJK face for ideographs, the
// Korean face for everything else
func faceFor(r rune, ko, cjk font.Face) font.Face {
	if isCJK(r) {
		return cjk
	}
	return ko
}

// measureMixed returns the advance width of text measured rune by rune with
// the per-rune face choice
func measureMixed(text string, ko, cjk font.Face) fixed.Int26_6 {
	var width fixed.Int26_6
	for _, r := range text {
		width += font.MeasureString(faceFor(r, ko, cjk), string(r))
	}
	return width
}

// wrapPixels breaks text into lines no wider than maxWidth pixels, measured
// with the mixed faces. Paragraphs (split on \n) wrap independently; a blank
// paragraph yields one empty line. A line always takes at least one rune, so
// a rune wider than maxWidth still makes progress.
func wrapPixels(text string, maxWidth fixed.Int26_6, ko, cjk font.Face) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			lines = append(lines, "")
			continue
		}
		var current strings.Builder
		var currentWidth fixed.Int26_6
		for _, r := range paragraph {
			runeWidth := font.MeasureString(faceFor(r, ko, cjk), string(r))
			if currentWidth+runeWidth > maxWidth && current.Len() > 0 {
				lines = append(lines, current.String())
				current.Reset()
				current.WriteRune(r)
				currentWidth = runeWidth
			} else {
				current.WriteRune(r)
				currentWidth += runeWidth
			}
		}
		if current.Len() > 0 {
			lines = append(lines, current.String())
		}
	}
	return lines
}
