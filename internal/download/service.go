package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/yt-get/internal/errs"
	"github.com/ytget/yt-get/internal/model"
	"github.com/ytget/yt-get/internal/platform"
)

// User-facing messages
const (
	MsgUnsupportedFormat  = "Unsupported format %q. Supported formats: %s"
	MsgUnsupportedQuality = "Unsupported quality %q. Allowed values: %s"
	MsgQualityFallback    = "Quality %q not available. Using best available."
	MsgDownloadingStreams = "Downloading video and audio streams."
	MsgMerging            = "Merging video and audio."
	MsgSaved              = "Saved: %s"
	MsgTagFailed          = "Could not write tags to %s: %v"
)

// Temporary file roles and progress labels
const (
	RoleVideo = "video"
	RoleAudio = "audio"
)

// Service performs audio and video downloads for single items
type Service struct {
	resolver Resolver
	encoder  Encoder
	reporter Reporter
	progress ProgressFunc
	tagger   Tagger
	tempDir  string
}

// Option configures a Service
type Option func(*Service)

// WithProgress sets the progress indicator factory
func WithProgress(fn ProgressFunc) Option {
	return func(s *Service) { s.progress = fn }
}

// WithTagger enables ID3 tagging of MP3 outputs
func WithTagger(t Tagger) Option {
	return func(s *Service) { s.tagger = t }
}

// WithTempDir sets the directory for intermediate video and audio files
func WithTempDir(dir string) Option {
	return func(s *Service) { s.tempDir = dir }
}

// NewService creates a new download service
func NewService(resolver Resolver, encoder Encoder, reporter Reporter, opts ...Option) *Service {
	s := &Service{
		resolver: resolver,
		encoder:  encoder,
		reporter: reporter,
		progress: func(string, int64) Progress { return noopProgress{} },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DownloadAudio transcodes the best audio stream of videoURL into
// opts.OutputDir and returns the written path with the video title. A partial
// output file is left in place on failure.
func (s *Service) DownloadAudio(ctx context.Context, videoURL string, opts model.DownloadOptions) (Result, error) {
	videoURL = platform.StripPlaylistParams(videoURL)

	format, ok := model.ParseAudioFormat(opts.Format)
	if !ok {
		return Result{}, errs.InvalidArgument(MsgUnsupportedFormat, format, model.AudioFormatList())
	}
	if err := platform.ValidateOutputDir(opts.OutputDir); err != nil {
		return Result{}, err
	}
	if err := s.resolver.ValidateURL(videoURL); err != nil {
		return Result{}, err
	}

	info, err := s.resolver.GetInfo(ctx, videoURL)
	if err != nil {
		return Result{}, err
	}
	outputPath := outputPathFor(opts, info, format.Extension())

	rendition, err := SelectAudio(info.Renditions)
	if err != nil {
		return Result{}, err
	}
	log.Printf("audio %s (%s): itag %d (%s, %d bps) -> %s",
		info.ID, info.Duration, rendition.Itag, rendition.MimeType, rendition.Bitrate, outputPath)

	stream, size, err := s.openStream(ctx, info, rendition)
	if err != nil {
		return Result{}, err
	}
	defer stream.Close()

	if err := s.transcode(ctx, stream, size, format, outputPath); err != nil {
		return Result{}, err
	}

	if format == model.AudioFormatMP3 && s.tagger != nil {
		if err := s.tagger.TagMP3(outputPath, info.Title, info.Author); err != nil {
			s.reporter.Warn(fmt.Sprintf(MsgTagFailed, outputPath, err))
		}
	}

	s.reporter.Success(fmt.Sprintf(MsgSaved, outputPath))
	return Result{Path: outputPath, Title: info.Title}, nil
}

// transcode pumps stream into the encoder through a pipe while reporting
// progress
func (s *Service) transcode(ctx context.Context, stream io.ReadCloser, size int64, format model.AudioFormat, outputPath string) error {
	progress := s.progress(RoleAudio, size)
	defer progress.Done()

	pr, pw := io.Pipe()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := pumpStream(gctx, stream, pw, size, progress.Observe)
		pw.CloseWithError(err)
		return err
	})

	g.Go(func() error {
		err := s.encoder.Transcode(gctx, pr, format, outputPath)
		if err != nil {
			pr.CloseWithError(err)
		} else {
			pr.Close()
		}
		return err
	})

	return g.Wait()
}

// DownloadVideo downloads the selected video rendition and the best audio
// rendition to temporary files and muxes them into an mp4 in opts.OutputDir.
// Temporary files are removed only after a successful mux.
func (s *Service) DownloadVideo(ctx context.Context, videoURL string, opts model.DownloadOptions) (Result, error) {
	videoURL = platform.StripPlaylistParams(videoURL)

	quality, ok := model.ParseQuality(opts.Quality)
	if !ok {
		return Result{}, errs.InvalidArgument(MsgUnsupportedQuality, quality, model.QualityList())
	}
	if err := platform.ValidateOutputDir(opts.OutputDir); err != nil {
		return Result{}, err
	}
	if err := s.resolver.ValidateURL(videoURL); err != nil {
		return Result{}, err
	}

	info, err := s.resolver.GetInfo(ctx, videoURL)
	if err != nil {
		return Result{}, err
	}
	outputPath := outputPathFor(opts, info, model.VideoExtension)

	videoRendition, fallback, err := SelectVideo(info.Renditions, quality)
	if err != nil {
		return Result{}, err
	}
	if fallback {
		s.reporter.Warn(fmt.Sprintf(MsgQualityFallback, quality))
	}
	audioRendition, err := SelectAudio(info.Renditions)
	if err != nil {
		return Result{}, err
	}
	log.Printf("video %s (%s): video itag %d (%s), audio itag %d -> %s",
		info.ID, info.Duration, videoRendition.Itag, videoRendition.QualityLabel, audioRendition.Itag, outputPath)

	base := baseName(opts, info)
	videoPath := platform.TempFilePath(s.tempDir, base, RoleVideo)
	audioPath := platform.TempFilePath(s.tempDir, base, RoleAudio)

	s.reporter.Info(MsgDownloadingStreams)
	if err := s.fetchToFile(ctx, info, videoRendition, videoPath, RoleVideo); err != nil {
		return Result{}, err
	}
	if err := s.fetchToFile(ctx, info, audioRendition, audioPath, RoleAudio); err != nil {
		return Result{}, err
	}

	s.reporter.Info(MsgMerging)
	if err := s.encoder.Mux(ctx, videoPath, audioPath, outputPath); err != nil {
		return Result{}, err
	}

	s.reporter.Success(fmt.Sprintf(MsgSaved, outputPath))
	platform.RemoveQuietly(videoPath, audioPath)
	return Result{Path: outputPath, Title: info.Title}, nil
}

// openStream opens rendition and falls back to its advertised content length
// when the resolver reports no size
func (s *Service) openStream(ctx context.Context, info *model.StreamInfo, rendition model.Rendition) (io.ReadCloser, int64, error) {
	stream, size, err := s.resolver.OpenStream(ctx, info, rendition)
	if err != nil {
		return nil, 0, err
	}
	if size <= 0 {
		size = rendition.ContentLength
	}
	return stream, size, nil
}

// fetchToFile downloads one rendition into path
func (s *Service) fetchToFile(ctx context.Context, info *model.StreamInfo, rendition model.Rendition, path, label string) (err error) {
	stream, size, err := s.openStream(ctx, info, rendition)
	if err != nil {
		return err
	}
	defer stream.Close()

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, platform.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close temp file: %w", cerr)
		}
	}()

	progress := s.progress(label, size)
	defer progress.Done()

	written, err := pumpStream(ctx, stream, file, size, progress.Observe)
	if err != nil {
		return err
	}
	log.Printf("fetched %s: %d bytes -> %s", label, written, path)
	return nil
}

// baseName is the sanitized custom filename, or the sanitized title
func baseName(opts model.DownloadOptions, info *model.StreamInfo) string {
	if opts.Filename != "" {
		return platform.SanitizeFilename(opts.Filename)
	}
	return platform.SanitizeFilename(info.Title)
}

func outputPathFor(opts model.DownloadOptions, info *model.StreamInfo, ext string) string {
	return filepath.Join(opts.OutputDir, baseName(opts, info)+"."+ext)
}

type noopProgress struct{}

func (noopProgress) Observe(int64, int64) {}
func (noopProgress) Done()                {}
