package encode

import (
	"context"
	"io"

	"github.com/ytget/yt-get/internal/model"
)

// Transcoder converts an audio stream into an output file
type Transcoder interface {
	Transcode(ctx context.Context, src io.Reader, format model.AudioFormat, outputPath string) error
}

// Muxer combines a video-only and an audio-only file into one container
type Muxer interface {
	Mux(ctx context.Context, videoPath, audioPath, outputPath string) error
}
