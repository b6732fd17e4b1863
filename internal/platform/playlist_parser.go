package platform

import (
	"context"
	"fmt"

	"github.com/ytget/yt-get/internal/model"
)

// PlaylistSource fetches the entries of a playlist by ID
type PlaylistSource interface {
	PlaylistEntries(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error)
}

// PlaylistParserService expands YouTube playlist URLs into video URLs
type PlaylistParserService struct {
	source PlaylistSource
}

// NewPlaylistParserService creates a new playlist parser service
func NewPlaylistParserService(source PlaylistSource) *PlaylistParserService {
	return &PlaylistParserService{source: source}
}

// ParsePlaylist resolves a playlist URL into its ordered entries
func (p *PlaylistParserService) ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	if !IsPlaylistURL(url) {
		return nil, fmt.Errorf("URL does not contain playlist parameter: %s", url)
	}

	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	entries, err := p.source.PlaylistEntries(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	playlist := model.NewPlaylist(playlistID, url)
	for _, e := range entries {
		playlist.AddEntry(e)
	}
	return playlist, nil
}

// ExpandPlaylist returns the item URLs of a playlist in playlist order
func (p *PlaylistParserService) ExpandPlaylist(ctx context.Context, url string) ([]string, error) {
	playlist, err := p.ParsePlaylist(ctx, url)
	if err != nil {
		return nil, err
	}
	return playlist.ItemURLs(), nil
}
