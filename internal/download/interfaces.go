package download

import (
	"context"
	"io"

	"github.com/ytget/yt-get/internal/encode"
	"github.com/ytget/yt-get/internal/model"
)

// Resolver turns a video URL into stream metadata and media streams
type Resolver interface {
	ValidateURL(rawURL string) error
	GetInfo(ctx context.Context, videoURL string) (*model.StreamInfo, error)
	OpenStream(ctx context.Context, info *model.StreamInfo, rendition model.Rendition) (io.ReadCloser, int64, error)
}

// Encoder transcodes audio and muxes video with audio
type Encoder interface {
	encode.Transcoder
	encode.Muxer
}

// Tagger writes title and artist metadata into an MP3 file
type Tagger interface {
	TagMP3(path, title, artist string) error
}

// Reporter receives user-facing status lines
type Reporter interface {
	Info(msg string)
	Step(msg string)
	Success(msg string)
	Warn(msg string)
}

// Progress observes the bytes received by one transfer
type Progress interface {
	Observe(received, total int64)
	Done()
}

// ProgressFunc starts a progress indicator for a transfer of total bytes
type ProgressFunc func(label string, total int64) Progress

// PlaylistExpander resolves a playlist URL into its item URLs
type PlaylistExpander interface {
	ExpandPlaylist(ctx context.Context, playlistURL string) ([]string, error)
}

// Result describes one written output
type Result struct {
	Path  string // output file
	Title string // resolved video title
}

// Downloader performs the per-item operations
type Downloader interface {
	DownloadAudio(ctx context.Context, videoURL string, opts model.DownloadOptions) (Result, error)
	DownloadVideo(ctx context.Context, videoURL string, opts model.DownloadOptions) (Result, error)
}
