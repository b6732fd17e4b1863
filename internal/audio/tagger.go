// Package audio writes metadata into finished audio files.
package audio

import (
	"fmt"
	"log"

	"github.com/bogem/id3v2"
)

// Tagger writes ID3v2 title and artist frames into MP3 files
type Tagger struct{}

// NewTagger creates a tagger
func NewTagger() *Tagger {
	return &Tagger{}
}

// TagMP3 sets the title and artist of the MP3 file at path. Empty values
// leave the corresponding frame untouched.
func (t *Tagger) TagMP3(path, title, artist string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open tags of %s: %w", path, err)
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	if title != "" {
		tag.SetTitle(title)
	}
	if artist != "" {
		tag.SetArtist(artist)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags of %s: %w", path, err)
	}
	log.Printf("tagged %s: title=%q artist=%q", path, title, artist)
	return nil
}
