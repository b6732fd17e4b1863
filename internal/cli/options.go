// Package cli implements the yt-get command line: flag parsing, input
// collection and wiring of the download pipeline.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ytget/yt-get/internal/platform"
)

// Command metadata
const (
	CommandName = "yt-get"
	Description = "Download audio (MP3) and/or video (MP4) from a YouTube link, playlist, or batch file.\n\nNote: Wrap the URL in quotes."
	UsageLine   = "Usage: yt-get [options] [urls...]"
)

// ErrHelp is returned by Parse when help was requested
var ErrHelp = pflag.ErrHelp

// Options holds the parsed command line
type Options struct {
	Audio   bool
	Video   bool
	Output  string
	Name    string
	Format  string
	Quality string
	Batch   string
	Config  string
	Verbose bool
	Version bool

	// Args are the positional URL arguments as given
	Args []string
}

// NewFlagSet binds every flag to opts
func NewFlagSet(opts *Options, output io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(CommandName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.SetInterspersed(true)
	fs.SortFlags = false

	fs.BoolVarP(&opts.Audio, "audio", "a", false, "Download audio")
	fs.BoolVarP(&opts.Video, "video", "v", false, "Download video")
	fs.StringVarP(&opts.Output, "output", "o", "", "Custom output `directory` (default: current directory)")
	fs.StringVarP(&opts.Name, "name", "n", "", "Custom base filename (only works for single video)")
	fs.StringVarP(&opts.Format, "format", "f", "", "Audio format: aac, ogg, wav, or flac (default: mp3)")
	fs.StringVarP(&opts.Quality, "quality", "q", "", "Video quality: 360p, 720p, 1080p, etc. (default: highest available)")
	fs.StringVarP(&opts.Batch, "batch", "b", "", "Read YouTube video/playlist URLs from a text `file`")
	fs.StringVarP(&opts.Config, "config", "c", "", "Settings `file` (JSON)")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Print diagnostic logs")
	fs.BoolVar(&opts.Version, "version", false, "Print version and exit")

	fs.Usage = func() { PrintUsage(output, fs) }
	return fs
}

// Parse parses args (without the program name)
func Parse(args []string, output io.Writer) (*Options, error) {
	opts := &Options{}
	fs := NewFlagSet(opts, output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.Args = fs.Args()
	return opts, nil
}

// PrintUsage writes the help text
func PrintUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintln(w, UsageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  urls    One or more YouTube video or playlist URLs (wrap each in quotes)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, fs.FlagUsages())
}

// InputURLs returns the raw inputs: the batch file contents when --batch is
// set, otherwise the cleaned positional arguments
func (o *Options) InputURLs() ([]string, error) {
	if o.Batch != "" {
		return platform.ReadURLsFromFile(o.Batch)
	}

	urls := make([]string, 0, len(o.Args))
	for _, arg := range o.Args {
		if u := CleanURL(arg); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// WantsUsage reports whether there is nothing to do
func (o *Options) WantsUsage(urls []string) bool {
	return len(urls) == 0 || (!o.Audio && !o.Video)
}

// OutputDir returns the absolute output directory, fallback being used when
// --output is not set and the working directory when neither is
func (o *Options) OutputDir(fallback string) (string, error) {
	dir := o.Output
	if dir == "" {
		dir = fallback
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolve working directory: %w", err)
		}
		return wd, nil
	}
	return filepath.Abs(dir)
}

// CleanURL trims an argument and strips one pair of surrounding double quotes
func CleanURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

// IsHelp reports whether err is a help request
func IsHelp(err error) bool {
	return errors.Is(err, ErrHelp)
}
