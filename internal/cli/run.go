package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/ytget/yt-get/internal/audio"
	"github.com/ytget/yt-get/internal/config"
	"github.com/ytget/yt-get/internal/download"
	"github.com/ytget/yt-get/internal/encode"
	"github.com/ytget/yt-get/internal/model"
	"github.com/ytget/yt-get/internal/platform"
	"github.com/ytget/yt-get/internal/ui"
	"github.com/ytget/yt-get/internal/youtube"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// LogPrefix is prepended to diagnostic log lines
const LogPrefix = "yt-get: "

// App runs one invocation of the command
type App struct {
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run executes the command with args (without the program name) and returns
// the process exit code
func (a *App) Run(ctx context.Context, args []string) int {
	console := ui.NewConsole(a.Stdout, a.Stderr)

	var usage bytes.Buffer
	opts, err := Parse(args, &usage)
	if err != nil {
		if IsHelp(err) {
			fmt.Fprint(a.Stdout, usage.String())
			return ExitOK
		}
		console.Error(err.Error())
		return ExitError
	}

	if opts.Version {
		fmt.Fprintf(a.Stdout, "%s %s\n", CommandName, a.Version)
		return ExitOK
	}

	if err := a.run(ctx, opts, console); err != nil {
		console.Error(err.Error())
		return ExitError
	}
	return ExitOK
}

func (a *App) run(ctx context.Context, opts *Options, console *ui.Console) error {
	configPath, err := config.ResolvePath(opts.Config)
	if err != nil {
		return err
	}
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.setupLogging(opts.Verbose || settings.Verbose)
	log.Printf("%s %s, config %s", CommandName, a.Version, configPath)

	urls, err := opts.InputURLs()
	if err != nil {
		return err
	}
	if opts.WantsUsage(urls) {
		PrintUsage(a.Stdout, NewFlagSet(&Options{}, a.Stdout))
		return nil
	}

	outputDir, err := opts.OutputDir(settings.OutputDir)
	if err != nil {
		return err
	}

	encoder := encode.NewService(settings.GetFFmpegPath())
	if err := encoder.Available(); err != nil {
		return err
	}
	log.Printf("ffmpeg: %s", encoder.Path())

	httpClient, err := settings.HTTPClient()
	if err != nil {
		return err
	}

	serviceOpts := []download.Option{
		download.WithTempDir(settings.GetTempDir()),
		download.WithProgress(func(label string, total int64) download.Progress {
			return console.StartProgress(label, total)
		}),
	}
	if settings.TagAudio {
		serviceOpts = append(serviceOpts, download.WithTagger(audio.NewTagger()))
	}

	downloader := download.NewService(youtube.NewClient(httpClient), encoder, console, serviceOpts...)
	playlists := platform.NewPlaylistParserService(platform.NewYTDLPParserService(httpClient))

	pipeline := download.NewPipeline(downloader, playlists, console)
	pipeline.SetUpdateCallback(func(item *model.Item) {
		if !item.Status.IsFinished() {
			log.Printf("item %d started: %s", item.Index, item.URL)
			return
		}
		log.Printf("item %d %s: %s (%s) %s", item.Index, item.Status, item.GetDisplayTitle(),
			item.FinishedAt.Sub(item.StartedAt).Round(time.Millisecond), item.LastError)
	})

	format := opts.Format
	if format == "" && opts.Audio {
		format = settings.AudioFormat
	}

	items, err := pipeline.Run(ctx, download.Request{
		URLs:  urls,
		Audio: opts.Audio,
		Video: opts.Video,
		Options: model.DownloadOptions{
			OutputDir: outputDir,
			Filename:  opts.Name,
			Format:    format,
			Quality:   opts.Quality,
		},
	})
	log.Printf("processed %d items", len(items))
	return err
}

// setupLogging routes the standard logger to stderr when verbose, otherwise
// discards it
func (a *App) setupLogging(verbose bool) {
	log.SetPrefix(LogPrefix)
	if verbose {
		log.SetOutput(a.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}
