package model

import (
	"strings"
	"time"
)

// Item represents a single concrete URL processed by the job pipeline
type Item struct {
	Index        int        // 1-based display number across the whole run
	URL          string     // concrete video URL
	Source       string     // raw input URL the item was expanded from
	FromPlaylist bool       // true when Source is a playlist
	Status       TaskStatus // current state
	Title        string     // video title, once known
	OutputPaths  []string   // files written by the requested operations
	LastError    string     // error message if the item failed
	StartedAt    time.Time
	FinishedAt   time.Time
}

// NewItem creates a pending item
func NewItem(index int, url, source string, fromPlaylist bool) *Item {
	return &Item{
		Index:        index,
		URL:          url,
		Source:       source,
		FromPlaylist: fromPlaylist,
		Status:       TaskStatusPending,
	}
}

// Start marks the item as running
func (it *Item) Start() {
	it.Status = TaskStatusDownloading
	it.StartedAt = time.Now()
}

// AddOutput records a written output file and the title it was resolved
// with. An empty title keeps the current one.
func (it *Item) AddOutput(path, title string) {
	it.OutputPaths = append(it.OutputPaths, path)
	if title != "" {
		it.Title = title
	}
}

// Finish marks the item completed, or failed when err is not nil
func (it *Item) Finish(err error) {
	if err != nil {
		it.Status = TaskStatusError
		it.LastError = err.Error()
	} else {
		it.Status = TaskStatusCompleted
	}
	it.FinishedAt = time.Now()
}

// GetDisplayTitle returns title, output filename, or URL in order of preference
func (it *Item) GetDisplayTitle() string {
	if it.Title != "" {
		return it.Title
	}

	if len(it.OutputPaths) > 0 {
		// support both / and \ separators
		parts := strings.FieldsFunc(it.OutputPaths[0], func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return it.URL
}
