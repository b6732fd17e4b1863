package ui

import (
	"io"
	"log"

	"github.com/schollz/progressbar/v3"
)

// Progress tracks the bytes received by one transfer
type Progress struct {
	bar   *progressbar.ProgressBar
	total int64
}

func newProgress(w io.Writer, label string, total int64) *Progress {
	limit := total
	if limit <= 0 {
		limit = ProgressUnknownSize
	}

	bar := progressbar.NewOptions64(limit,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(ProgressBarWidth),
		progressbar.OptionThrottle(ProgressThrottle),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar, total: limit}
}

// Observe reports the cumulative bytes received and the declared total
func (p *Progress) Observe(received, total int64) {
	if total > 0 && total != p.total {
		p.total = total
		p.bar.ChangeMax64(total)
	}
	if err := p.bar.Set64(received); err != nil {
		log.Printf("progress update failed: %v", err)
	}
}

// Done completes and clears the bar
func (p *Progress) Done() {
	if err := p.bar.Finish(); err != nil {
		log.Printf("progress finish failed: %v", err)
	}
}
