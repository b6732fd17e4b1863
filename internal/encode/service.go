// Package encode runs ffmpeg to transcode audio streams and to mux separate
// video and audio files into a single container.
package encode

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"sync"

	"github.com/ytget/yt-get/internal/model"
)

// FFmpeg constants for encoding settings
const (
	// Executable
	FFmpegCommand = "ffmpeg"

	// Common flags
	OverwriteFlag  = "-y"
	HideBannerFlag = "-hide_banner"
	LogLevelFlag   = "-loglevel"
	LogLevel       = "error"

	// Audio transcoding settings
	StdinInput   = "pipe:0"
	AudioBitrate = "128k"

	// Mux settings
	VideoStreamMap = "0:v:0"
	AudioStreamMap = "1:a:0"
	CopyCodec      = "copy"
	MuxContainer   = "mp4"

	// Bytes of stderr kept for error reports
	StderrTailSize = 2048
)

// muxers maps audio formats to ffmpeg output muxer names
var muxers = map[model.AudioFormat]string{
	model.AudioFormatWAV:  "wav",
	model.AudioFormatOGG:  "ogg",
	model.AudioFormatFLAC: "flac",
	model.AudioFormatAAC:  "adts",
	model.AudioFormatMP3:  "mp3",
}

// Service wraps an ffmpeg executable
type Service struct {
	ffmpegPath string
}

// NewService creates an encoder. An empty path resolves "ffmpeg" from PATH.
func NewService(ffmpegPath string) *Service {
	if strings.TrimSpace(ffmpegPath) == "" {
		ffmpegPath = FFmpegCommand
	}
	return &Service{ffmpegPath: ffmpegPath}
}

// Path returns the configured ffmpeg executable
func (s *Service) Path() string {
	return s.ffmpegPath
}

// Available checks that the ffmpeg executable can be found
func (s *Service) Available() error {
	if _, err := exec.LookPath(s.ffmpegPath); err != nil {
		return fmt.Errorf("ffmpeg not found (%s): %w", s.ffmpegPath, err)
	}
	return nil
}

// MuxerFor returns the ffmpeg muxer name for an audio format
func MuxerFor(format model.AudioFormat) (string, bool) {
	m, ok := muxers[format]
	return m, ok
}

// BuildTranscodeArgs builds the arguments for transcoding stdin into outputPath
func (s *Service) BuildTranscodeArgs(muxer, outputPath string) []string {
	return []string{
		OverwriteFlag,
		HideBannerFlag,
		LogLevelFlag, LogLevel,
		"-i", StdinInput,
		"-vn",
		"-b:a", AudioBitrate,
		"-f", muxer,
		outputPath,
	}
}

// BuildMuxArgs builds the arguments for muxing a video and an audio file
func (s *Service) BuildMuxArgs(videoPath, audioPath, outputPath string) []string {
	return []string{
		OverwriteFlag,
		HideBannerFlag,
		LogLevelFlag, LogLevel,
		"-i", videoPath,
		"-i", audioPath,
		"-map", VideoStreamMap,
		"-map", AudioStreamMap,
		"-c:v", CopyCodec,
		"-c:a", CopyCodec,
		"-f", MuxContainer,
		outputPath,
	}
}

// Transcode reads src until EOF and writes it to outputPath as format
func (s *Service) Transcode(ctx context.Context, src io.Reader, format model.AudioFormat, outputPath string) error {
	muxer, ok := MuxerFor(format)
	if !ok {
		return fmt.Errorf("no muxer for audio format %q", format)
	}

	cmd := exec.CommandContext(ctx, s.ffmpegPath, s.BuildTranscodeArgs(muxer, outputPath)...)
	cmd.Stdin = src
	return s.run(cmd, "transcode")
}

// Mux copies the first video stream of videoPath and the first audio stream
// of audioPath into an mp4 at outputPath
func (s *Service) Mux(ctx context.Context, videoPath, audioPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, s.ffmpegPath, s.BuildMuxArgs(videoPath, audioPath, outputPath)...)
	return s.run(cmd, "mux")
}

// run executes cmd and folds the stderr tail into any failure
func (s *Service) run(cmd *exec.Cmd, op string) error {
	stderr := newTailBuffer(StderrTailSize)
	cmd.Stderr = stderr

	log.Printf("ffmpeg %s: %s", op, strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		if tail := strings.TrimSpace(stderr.String()); tail != "" {
			return fmt.Errorf("ffmpeg %s failed: %w: %s", op, err, tail)
		}
		return fmt.Errorf("ffmpeg %s failed: %w", op, err)
	}
	return nil
}

// tailBuffer keeps the last max bytes written to it
type tailBuffer struct {
	mu  sync.Mutex
	buf []byte
	max int
}

func newTailBuffer(max int) *tailBuffer {
	return &tailBuffer{max: max}
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf = append(b.buf, p...)
	if over := len(b.buf) - b.max; over > 0 {
		b.buf = append(b.buf[:0], b.buf[over:]...)
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}
