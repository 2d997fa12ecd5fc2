// Package mvle renders .mvle novel episode files (a JSON block format) into
// a single long PNG image with Korean/CJK mixed-font text layout.
package mvle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrNoBlocks is returned for episode files with an empty block list
var ErrNoBlocks = errors.New("episode has no blocks")

// Episode is one .mvle file: an episode title, the novel it belongs to and
// an ordered list of text blocks.
type Episode struct {
	Title  string  `json:"title"`
	Novel  Novel   `json:"novel"`
	Blocks []Block `json:"blocks"`
}

// Novel identifies the novel an episode belongs to
type Novel struct {
	Title string `json:"title"`
}

// Block is one paragraph-level unit of episode text. Content carries the
// rich-text segments; only the "strong" mark is honoured when rendering.
type Block struct {
	Text    string    `json:"text"`
	Content []Segment `json:"content"`
}

// Segment is one rich-text run inside a block
type Segment struct {
	Marks []Mark `json:"marks"`
}

// Mark annotates a segment, e.g. {"type": "strong"} for bold
type Mark struct {
	Type string `json:"type"`
}

// Bold reports whether any segment of the block carries a strong mark; such
// blocks are rendered entirely in the bold faces.
func (b Block) Bold() bool {
	for _, seg := range b.Content {
		for _, mark := range seg.Marks {
			if mark.Type == "strong" {
				return true
			}
		}
	}
	return false
}

// Parse decodes a .mvle document from its JSON bytes
func Parse(data []byte) (*Episode, error) {
	var ep Episode
	if err := json.Unmarshal(data, &ep); err != nil {
		return nil, fmt.Errorf("unable to parse episode file: %w", err)
	}
	return &ep, nil
}

// Load reads and decodes the .mvle file at path
func Load(path string) (*Episode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read episode file %s: %w", path, err)
	}
	return Parse(data)
}
