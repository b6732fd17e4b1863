package model

import "strings"

// AudioFormat is the container/codec an audio download is transcoded to
type AudioFormat string

const (
	AudioFormatWAV  AudioFormat = "wav"
	AudioFormatOGG  AudioFormat = "ogg"
	AudioFormatFLAC AudioFormat = "flac"
	AudioFormatAAC  AudioFormat = "aac"
	AudioFormatMP3  AudioFormat = "mp3"
)

// DefaultAudioFormat is used when no format was requested
const DefaultAudioFormat = AudioFormatMP3

// VideoExtension is the extension of every video output
const VideoExtension = "mp4"

// AllowedAudioFormats lists the accepted audio formats in display order
var AllowedAudioFormats = []AudioFormat{
	AudioFormatWAV,
	AudioFormatOGG,
	AudioFormatFLAC,
	AudioFormatAAC,
	AudioFormatMP3,
}

// AllowedQualities lists the accepted video resolution labels
var AllowedQualities = []string{"144p", "240p", "360p", "480p", "720p", "1080p", "1440p", "2160p"}

// DownloadOptions holds per-item options. Empty strings mean "not given".
type DownloadOptions struct {
	OutputDir string
	Filename  string
	Format    string
	Quality   string
}

// ParseAudioFormat lowercases the requested format, applies the default for
// an empty value and reports whether the result is allowed.
func ParseAudioFormat(raw string) (AudioFormat, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DefaultAudioFormat, true
	}
	for _, f := range AllowedAudioFormats {
		if string(f) == value {
			return f, true
		}
	}
	return AudioFormat(value), false
}

// Extension returns the output file extension without a dot
func (f AudioFormat) Extension() string {
	return string(f)
}

// ParseQuality lowercases the requested quality and reports whether it is
// allowed. An empty value is allowed and means "best available".
func ParseQuality(raw string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return "", true
	}
	for _, q := range AllowedQualities {
		if q == value {
			return value, true
		}
	}
	return value, false
}

// AudioFormatList returns the allowed formats joined for messages
func AudioFormatList() string {
	names := make([]string, 0, len(AllowedAudioFormats))
	for _, f := range AllowedAudioFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// QualityList returns the allowed qualities joined for messages
func QualityList() string {
	return strings.Join(AllowedQualities, ", ")
}
