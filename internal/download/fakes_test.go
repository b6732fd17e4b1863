package download

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/ytget/yt-get/internal/errs"
	"github.com/ytget/yt-get/internal/model"
)

type fakeReporter struct {
	mu        sync.Mutex
	infos     []string
	steps     []string
	successes []string
	warnings  []string
}

func (r *fakeReporter) Info(msg string)    { r.add(&r.infos, msg) }
func (r *fakeReporter) Step(msg string)    { r.add(&r.steps, msg) }
func (r *fakeReporter) Success(msg string) { r.add(&r.successes, msg) }
func (r *fakeReporter) Warn(msg string)    { r.add(&r.warnings, msg) }

func (r *fakeReporter) add(dst *[]string, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*dst = append(*dst, msg)
}

type fakeResolver struct {
	info       *model.StreamInfo
	payloads   map[int]string
	infoErr    error
	openErr    error
	opened     []int
	infoURLs   []string
	invalidURL bool
	sizeless   bool // report unknown stream sizes
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		info: &model.StreamInfo{
			ID:     "abc123",
			Title:  "My: Video?",
			Author: "Uploader",
			Renditions: []model.Rendition{
				{Itag: 18, QualityLabel: "360p", MimeType: "video/mp4", HasVideo: true, HasAudio: true, Bitrate: 500},
				{Itag: 136, QualityLabel: "720p", MimeType: "video/mp4", HasVideo: true, Bitrate: 2000},
				{Itag: 137, QualityLabel: "1080p", MimeType: "video/mp4", HasVideo: true, Bitrate: 4000},
				{Itag: 140, MimeType: "audio/mp4", HasAudio: true, Bitrate: 128000},
				{Itag: 251, MimeType: "audio/webm", HasAudio: true, Bitrate: 160000},
			},
		},
		payloads: map[int]string{
			136: "video-720",
			137: "video-1080",
			140: "audio-140",
			251: "audio-251",
		},
	}
}

func (f *fakeResolver) ValidateURL(rawURL string) error {
	if f.invalidURL {
		return errs.InvalidArgument("Invalid YouTube URL.")
	}
	return nil
}

func (f *fakeResolver) GetInfo(_ context.Context, videoURL string) (*model.StreamInfo, error) {
	f.infoURLs = append(f.infoURLs, videoURL)
	if f.infoErr != nil {
		return nil, f.infoErr
	}
	return f.info, nil
}

func (f *fakeResolver) OpenStream(_ context.Context, _ *model.StreamInfo, r model.Rendition) (io.ReadCloser, int64, error) {
	if f.openErr != nil {
		return nil, 0, f.openErr
	}
	f.opened = append(f.opened, r.Itag)
	payload := f.payloads[r.Itag]
	size := int64(len(payload))
	if f.sizeless {
		size = 0
	}
	return io.NopCloser(strings.NewReader(payload)), size, nil
}

type fakeEncoder struct {
	transcoded   []byte
	transcodeOut string
	format       model.AudioFormat
	transcodeErr error
	muxInputs    []string
	muxOut       string
	muxErr       error
}

func (e *fakeEncoder) Transcode(_ context.Context, src io.Reader, format model.AudioFormat, outputPath string) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	if e.transcodeErr != nil {
		return e.transcodeErr
	}
	e.transcoded = data
	e.transcodeOut = outputPath
	e.format = format
	return os.WriteFile(outputPath, data, 0o644)
}

func (e *fakeEncoder) Mux(_ context.Context, videoPath, audioPath, outputPath string) error {
	for _, p := range []string{videoPath, audioPath} {
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		e.muxInputs = append(e.muxInputs, string(data))
	}
	e.muxOut = outputPath
	if e.muxErr != nil {
		return e.muxErr
	}
	return os.WriteFile(outputPath, []byte(strings.Join(e.muxInputs, "+")), 0o644)
}

type fakeTagger struct {
	calls []string
	err   error
}

func (t *fakeTagger) TagMP3(path, title, artist string) error {
	t.calls = append(t.calls, fmt.Sprintf("%s|%s|%s", path, title, artist))
	return t.err
}

type recordingProgress struct {
	label    string
	total    int64
	observed []int64
	done     bool
}

func (p *recordingProgress) Observe(received, _ int64) { p.observed = append(p.observed, received) }
func (p *recordingProgress) Done()                     { p.done = true }

type progressRecorder struct {
	bars []*recordingProgress
}

func (r *progressRecorder) start(label string, total int64) Progress {
	p := &recordingProgress{label: label, total: total}
	r.bars = append(r.bars, p)
	return p
}

// failingWriter fails every write
type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

// chunkedReader returns data in pieces of at most n bytes
type chunkedReader struct {
	r *bytes.Reader
	n int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(p) > c.n {
		p = p[:c.n]
	}
	return c.r.Read(p)
}
