package download

import (
	"errors"
	"strings"

	"github.com/ytget/yt-get/internal/model"
)

var (
	// ErrNoVideoRendition is returned when a video has no rendition carrying video
	ErrNoVideoRendition = errors.New("no video stream available")
	// ErrNoAudioRendition is returned when a video has no rendition carrying audio
	ErrNoAudioRendition = errors.New("no audio stream available")
)

// SelectAudio picks the highest-bitrate audio-only rendition, falling back to
// the highest-bitrate rendition that carries audio at all
func SelectAudio(renditions []model.Rendition) (model.Rendition, error) {
	if r, ok := best(renditions, isAudioOnly, byBitrate); ok {
		return r, nil
	}
	if r, ok := best(renditions, hasAudio, byBitrate); ok {
		return r, nil
	}
	return model.Rendition{}, ErrNoAudioRendition
}

// SelectVideo picks the video rendition for quality. Without a quality the
// best video-only rendition (height, then bitrate) is used. When no video-only
// rendition carries the requested label exactly, the best one is used and
// fallback reports true.
func SelectVideo(renditions []model.Rendition, quality string) (r model.Rendition, fallback bool, err error) {
	if quality != "" {
		for _, candidate := range renditions {
			if isVideoOnly(candidate) && strings.EqualFold(candidate.QualityLabel, quality) {
				return candidate, false, nil
			}
		}
	}

	fallback = quality != ""
	if r, ok := best(renditions, isVideoOnly, byHeight); ok {
		return r, fallback, nil
	}
	if r, ok := best(renditions, hasVideo, byHeight); ok {
		return r, fallback, nil
	}
	return model.Rendition{}, false, ErrNoVideoRendition
}

func isAudioOnly(r model.Rendition) bool { return r.HasAudio && !r.HasVideo }
func isVideoOnly(r model.Rendition) bool { return r.HasVideo && !r.HasAudio }
func hasAudio(r model.Rendition) bool    { return r.HasAudio }
func hasVideo(r model.Rendition) bool    { return r.HasVideo }

// byBitrate reports whether a ranks above b by bitrate
func byBitrate(a, b model.Rendition) bool {
	return a.Bitrate > b.Bitrate
}

// byHeight reports whether a ranks above b by height, then bitrate
func byHeight(a, b model.Rendition) bool {
	if ha, hb := a.Height(), b.Height(); ha != hb {
		return ha > hb
	}
	return a.Bitrate > b.Bitrate
}

// best returns the first top-ranked rendition accepted by keep
func best(renditions []model.Rendition, keep func(model.Rendition) bool, better func(a, b model.Rendition) bool) (model.Rendition, bool) {
	var (
		top   model.Rendition
		found bool
	)
	for _, r := range renditions {
		if !keep(r) {
			continue
		}
		if !found || better(r, top) {
			top, found = r, true
		}
	}
	return top, found
}
