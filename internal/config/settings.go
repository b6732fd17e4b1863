package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ytget/yt-get/internal/model"
)

// Environment variables overriding the settings file
const (
	EnvConfigPath = "YTGET_CONFIG"
	EnvFFmpeg     = "YTGET_FFMPEG"
	EnvTempDir    = "YTGET_TEMP_DIR"
	EnvProxy      = "YTGET_PROXY"
)

// Default values
const (
	DefaultFFmpegPath         = "ffmpeg"
	DefaultHTTPTimeoutSeconds = 0 // no timeout, long downloads must not be cut
	DefaultTagAudio           = true
	DefaultVerbose            = false

	MaxHTTPTimeoutSeconds = 24 * 60 * 60

	AppDirName     = "yt-get"
	ConfigFileName = "config.json"
)

// Settings holds user configuration loaded from a JSON file
type Settings struct {
	OutputDir          string `json:"output_dir,omitempty"`
	AudioFormat        string `json:"audio_format,omitempty"`
	FFmpegPath         string `json:"ffmpeg_path,omitempty"`
	TempDir            string `json:"temp_dir,omitempty"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds,omitempty"`
	ProxyURL           string `json:"proxy_url,omitempty"`
	TagAudio           bool   `json:"tag_audio"`
	Verbose            bool   `json:"verbose"`
}

// DefaultSettings returns settings with every default applied
func DefaultSettings() *Settings {
	return &Settings{
		FFmpegPath:         DefaultFFmpegPath,
		HTTPTimeoutSeconds: DefaultHTTPTimeoutSeconds,
		TagAudio:           DefaultTagAudio,
		Verbose:            DefaultVerbose,
	}
}

// DefaultPath returns the per-user settings file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// ResolvePath picks the settings file: explicit path, then YTGET_CONFIG,
// then the per-user default
func ResolvePath(explicit string) (string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return p, nil
	}
	return DefaultPath()
}

// Load reads settings from path and applies environment overrides. A missing
// file yields the defaults.
func Load(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Printf("config %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	s.applyEnv()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects values that cannot be used
func (s *Settings) Validate() error {
	if s.AudioFormat != "" {
		if _, ok := model.ParseAudioFormat(s.AudioFormat); !ok {
			return fmt.Errorf("audio_format %q is not one of %s", s.AudioFormat, model.AudioFormatList())
		}
	}
	if s.HTTPTimeoutSeconds < 0 {
		return fmt.Errorf("http_timeout_seconds must not be negative, got %d", s.HTTPTimeoutSeconds)
	}
	if s.ProxyURL != "" {
		if _, err := parseProxy(s.ProxyURL); err != nil {
			return err
		}
	}
	return nil
}

// applyEnv overrides file values with environment variables
func (s *Settings) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvFFmpeg)); v != "" {
		s.FFmpegPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTempDir)); v != "" {
		s.TempDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvProxy)); v != "" {
		s.ProxyURL = v
	}
}

// GetFFmpegPath returns the ffmpeg executable to run
func (s *Settings) GetFFmpegPath() string {
	if strings.TrimSpace(s.FFmpegPath) == "" {
		return DefaultFFmpegPath
	}
	return s.FFmpegPath
}

// GetTempDir returns the directory for intermediate files
func (s *Settings) GetTempDir() string {
	if strings.TrimSpace(s.TempDir) == "" {
		return os.TempDir()
	}
	return s.TempDir
}

// GetHTTPTimeout returns the HTTP client timeout, zero meaning none
func (s *Settings) GetHTTPTimeout() time.Duration {
	seconds := s.HTTPTimeoutSeconds
	if seconds <= 0 {
		return 0
	}
	if seconds > MaxHTTPTimeoutSeconds {
		seconds = MaxHTTPTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// HTTPClient builds the client shared by the resolver and the playlist parser
func (s *Settings) HTTPClient() (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if s.ProxyURL != "" {
		proxy, err := parseProxy(s.ProxyURL)
		if err != nil {
			return nil, err
		}
		transport.Proxy = http.ProxyURL(proxy)
	}
	return &http.Client{Timeout: s.GetHTTPTimeout(), Transport: transport}, nil
}

func parseProxy(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("proxy_url %q is not a valid URL", raw)
	}
	return u, nil
}
