package download

import (
	"context"
	"fmt"
	"log"

	"github.com/ytget/yt-get/internal/model"
	"github.com/ytget/yt-get/internal/platform"
)

// Pipeline messages
const (
	MsgFormatIgnored       = "--format only applies to audio downloads. Ignoring it."
	MsgNameIgnoredMultiple = "⚠️  --name is ignored when using multiple URLs. Each video will use its own title."
	MsgNameIgnoredPlaylist = "⚠️  --name is ignored for playlists. Each video will use its own title."
	MsgDownloadingItem     = "Downloading item %d..."
)

// Request describes one pipeline run
type Request struct {
	URLs    []string
	Audio   bool
	Video   bool
	Options model.DownloadOptions
}

// Pipeline expands raw inputs into items and runs the requested operations
// for each item in order, stopping at the first failure
type Pipeline struct {
	downloader Downloader
	playlists  PlaylistExpander
	reporter   Reporter
	onUpdate   func(*model.Item) // callback for item state changes
}

// NewPipeline creates a new job pipeline
func NewPipeline(downloader Downloader, playlists PlaylistExpander, reporter Reporter) *Pipeline {
	return &Pipeline{
		downloader: downloader,
		playlists:  playlists,
		reporter:   reporter,
	}
}

// SetUpdateCallback sets the callback function for item updates
func (p *Pipeline) SetUpdateCallback(callback func(*model.Item)) {
	p.onUpdate = callback
}

// Run processes req and returns the items started so far. The first error
// aborts the run and is returned unchanged.
func (p *Pipeline) Run(ctx context.Context, req Request) ([]*model.Item, error) {
	base := req.Options

	if req.Options.Format != "" && !req.Audio {
		p.reporter.Warn(MsgFormatIgnored)
	}
	if err := platform.ValidateOutputDir(base.OutputDir); err != nil {
		return nil, err
	}
	if base.Filename != "" && len(req.URLs) > 1 {
		p.reporter.Warn(MsgNameIgnoredMultiple)
	}

	var items []*model.Item
	index := 1

	for _, rawURL := range req.URLs {
		isPlaylist := platform.IsPlaylistURL(rawURL)

		urls := []string{rawURL}
		if isPlaylist {
			expanded, err := p.playlists.ExpandPlaylist(ctx, rawURL)
			if err != nil {
				return items, err
			}
			log.Printf("playlist %s expanded to %d items", rawURL, len(expanded))
			urls = expanded

			if base.Filename != "" {
				p.reporter.Warn(MsgNameIgnoredPlaylist)
			}
		}

		for _, itemURL := range urls {
			if err := ctx.Err(); err != nil {
				return items, err
			}

			p.reporter.Step(fmt.Sprintf(MsgDownloadingItem, index))

			item := model.NewItem(index, itemURL, rawURL, isPlaylist)
			items = append(items, item)

			opts := model.DownloadOptions{
				OutputDir: base.OutputDir,
				Format:    base.Format,
				Quality:   base.Quality,
			}
			if len(req.URLs) == 1 && !isPlaylist {
				opts.Filename = base.Filename
			}

			if err := p.runItem(ctx, item, req, opts); err != nil {
				return items, err
			}
			index++
		}
	}

	return items, nil
}

// runItem runs audio then video for one item
func (p *Pipeline) runItem(ctx context.Context, item *model.Item, req Request, opts model.DownloadOptions) error {
	item.Start()
	p.notifyUpdate(item)

	err := p.runOperations(ctx, item, req, opts)

	item.Finish(err)
	p.notifyUpdate(item)
	return err
}

func (p *Pipeline) runOperations(ctx context.Context, item *model.Item, req Request, opts model.DownloadOptions) error {
	if req.Audio {
		res, err := p.downloader.DownloadAudio(ctx, item.URL, opts)
		if err != nil {
			return err
		}
		item.AddOutput(res.Path, res.Title)
	}
	if req.Video {
		res, err := p.downloader.DownloadVideo(ctx, item.URL, opts)
		if err != nil {
			return err
		}
		item.AddOutput(res.Path, res.Title)
	}
	return nil
}

// notifyUpdate calls the update callback if set
func (p *Pipeline) notifyUpdate(item *model.Item) {
	if p.onUpdate != nil {
		p.onUpdate(item)
	}
}
