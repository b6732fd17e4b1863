package model

import (
	"regexp"
	"strconv"
	"time"
)

var heightRe = regexp.MustCompile(`([0-9]{3,4})p`)

// Rendition is one encoded stream variant of a video
type Rendition struct {
	Itag          int
	QualityLabel  string
	MimeType      string
	Bitrate       int
	ContentLength int64
	HasVideo      bool
	HasAudio      bool
}

// Height parses the vertical resolution from the quality label, 0 if unknown
func (r Rendition) Height() int {
	m := heightRe.FindStringSubmatch(r.QualityLabel)
	if len(m) >= 2 {
		if v, err := strconv.Atoi(m[1]); err == nil {
			return v
		}
	}
	return 0
}

// StreamInfo is the metadata resolved for a single video URL
type StreamInfo struct {
	ID         string
	Title      string
	Author     string
	Duration   time.Duration
	Renditions []Rendition

	// Handle is resolver-specific state needed to open streams later.
	Handle any
}
