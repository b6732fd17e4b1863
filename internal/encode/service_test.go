package encode

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-get/internal/model"
)

func TestNewService(t *testing.T) {
	assert.Equal(t, FFmpegCommand, NewService("").Path())
	assert.Equal(t, FFmpegCommand, NewService("  ").Path())
	assert.Equal(t, "/opt/ffmpeg", NewService("/opt/ffmpeg").Path())
}

func TestMuxerFor(t *testing.T) {
	tests := []struct {
		format   model.AudioFormat
		expected string
	}{
		{model.AudioFormatWAV, "wav"},
		{model.AudioFormatOGG, "ogg"},
		{model.AudioFormatFLAC, "flac"},
		{model.AudioFormatAAC, "adts"},
		{model.AudioFormatMP3, "mp3"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			muxer, ok := MuxerFor(tt.format)
			require.True(t, ok)
			assert.Equal(t, tt.expected, muxer)
		})
	}

	_, ok := MuxerFor(model.AudioFormat("opus"))
	assert.False(t, ok)
}

func TestBuildTranscodeArgs(t *testing.T) {
	args := NewService("").BuildTranscodeArgs("mp3", "/out/song.mp3")

	expected := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", "pipe:0",
		"-vn",
		"-b:a", "128k",
		"-f", "mp3",
		"/out/song.mp3",
	}
	assert.Equal(t, expected, args)
}

func TestBuildMuxArgs(t *testing.T) {
	args := NewService("").BuildMuxArgs("/tmp/v.tmp", "/tmp/a.tmp", "/out/clip.mp4")

	expected := []string{
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", "/tmp/v.tmp",
		"-i", "/tmp/a.tmp",
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", "copy",
		"-f", "mp4",
		"/out/clip.mp4",
	}
	assert.Equal(t, expected, args)
}

func TestAvailable_Missing(t *testing.T) {
	s := NewService(filepath.Join(t.TempDir(), "no-such-ffmpeg"))
	assert.Error(t, s.Available())
}

func TestTranscode_UnknownFormat(t *testing.T) {
	s := NewService("")
	err := s.Transcode(context.Background(), strings.NewReader(""), model.AudioFormat("opus"), "/out/x.opus")
	assert.ErrorContains(t, err, "opus")
}

// fakeFFmpeg writes a shell script standing in for ffmpeg
func fakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stand-in requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestTranscode_ReadsStdin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "copy.bin")
	// the last argument is the output path
	script := `for last; do :; done; cat > "$last"`
	s := NewService(fakeFFmpeg(t, script))

	err := s.Transcode(context.Background(), strings.NewReader("audio bytes"), model.AudioFormatMP3, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(data))
}

func TestMux_FailureCarriesStderr(t *testing.T) {
	s := NewService(fakeFFmpeg(t, `echo "Invalid data found when processing input" >&2; exit 1`))

	err := s.Mux(context.Background(), "/v.tmp", "/a.tmp", "/out.mp4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ffmpeg mux failed")
	assert.Contains(t, err.Error(), "Invalid data found when processing input")
}

func TestTailBuffer(t *testing.T) {
	b := newTailBuffer(5)

	n, err := b.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", b.String())

	_, _ = b.Write([]byte("defgh"))
	assert.Equal(t, "defgh", b.String())

	_, _ = b.Write([]byte("ij"))
	assert.Equal(t, "fghij", b.String())
}
