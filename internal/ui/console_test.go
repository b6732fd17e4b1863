package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestConsole() (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewConsole(&out, &errOut), &out, &errOut
}

func TestConsole_Streams(t *testing.T) {
	tests := []struct {
		name    string
		write   func(c *Console)
		wantOut string
		wantErr string
	}{
		{
			name:    "info",
			write:   func(c *Console) { c.Info("Downloading video and audio streams.") },
			wantOut: "Downloading video and audio streams.\n",
		},
		{
			name:    "step",
			write:   func(c *Console) { c.Step("Downloading item 1...") },
			wantOut: "📦  Downloading item 1...\n",
		},
		{
			name:    "success",
			write:   func(c *Console) { c.Success("Saved: /tmp/a.mp3") },
			wantOut: "Saved: /tmp/a.mp3\n",
		},
		{
			name:    "warn",
			write:   func(c *Console) { c.Warn("--format only applies to audio downloads. Ignoring it.") },
			wantErr: "--format only applies to audio downloads. Ignoring it.\n",
		},
		{
			name:    "error",
			write:   func(c *Console) { c.Error("Invalid YouTube URL.") },
			wantErr: "❌  Error: Invalid YouTube URL.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, errOut := newTestConsole()
			tt.write(c)
			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantErr, errOut.String())
		})
	}
}

func TestConsole_ProgressWritesToErrOut(t *testing.T) {
	c, out, errOut := newTestConsole()

	p := c.StartProgress("video", 100)
	p.Observe(40, 100)
	p.Observe(100, 100)
	p.Done()

	assert.Empty(t, out.String())
	assert.NotEmpty(t, errOut.String())
}

func TestProgress_UnknownTotal(t *testing.T) {
	c, _, _ := newTestConsole()

	p := c.StartProgress("audio", 0)
	assert.Equal(t, int64(ProgressUnknownSize), p.total)

	p.Observe(512, 2048)
	assert.Equal(t, int64(2048), p.total)
	p.Done()
}
