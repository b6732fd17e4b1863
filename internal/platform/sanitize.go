package platform

import (
	"regexp"
	"strings"
)

// FallbackFilename is used when a title sanitizes to nothing
const FallbackFilename = "youtube-download"

var illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeFilename removes characters that are illegal in file paths and
// trims the result. It never returns an empty string.
func SanitizeFilename(title string) string {
	name := strings.TrimSpace(illegalFilenameChars.ReplaceAllString(title, ""))
	if name == "" {
		return FallbackFilename
	}
	return name
}
