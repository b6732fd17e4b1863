package platform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-get/internal/errs"
)

// DefaultFilePermissions is the mode of files created by the downloader
const DefaultFilePermissions = 0644

// Temporary file naming
const (
	TempFileSuffix = ".tmp"
)

// IsDirectory reports whether path exists and is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ValidateOutputDir fails with an invalid-argument error unless dir is an
// existing directory
func ValidateOutputDir(dir string) error {
	if dir == "" || !IsDirectory(dir) {
		return errs.InvalidArgument("Output directory does not exist: %s", dir)
	}
	return nil
}

// TempFilePath builds a unique temporary file path inside dir for the given
// base name and role (e.g. "video", "audio"). An empty dir means os.TempDir().
func TempFilePath(dir, base, role string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	name := fmt.Sprintf("%s-%s-%s%s", base, generateTempID(), role, TempFileSuffix)
	return filepath.Join(dir, name)
}

// RemoveQuietly deletes the given files, logging and swallowing failures
func RemoveQuietly(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to remove %s: %v", p, err)
		}
	}
}

// generateTempID returns a UUID v7, falling back to a timestamp
func generateTempID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return id.String()
}
