package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/yt-get/internal/errs"
)

// CommentPrefix marks lines ignored in batch files
const CommentPrefix = "#"

// ReadURLsFromFile reads newline-delimited URLs from a batch file, skipping
// blank lines and comments. File order is preserved.
func ReadURLsFromFile(path string) ([]string, error) {
	fullPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve batch file path: %w", err)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.NotFound("Batch file not found: %s", fullPath)
		}
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return ParseURLList(string(data)), nil
}

// ParseURLList splits text into trimmed, non-comment, non-empty lines
func ParseURLList(content string) []string {
	var urls []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		urls = append(urls, line)
	}
	return urls
}
