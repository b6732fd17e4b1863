package platform

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-get/internal/model"
)

// AllPlaylistItems is the item limit passed to the library. It has to be
// positive or the library stops after the first page.
const AllPlaylistItems = math.MaxInt32

// YTDLPParserService resolves playlist entries using the ytdlp library
type YTDLPParserService struct {
	httpClient *http.Client
}

// NewYTDLPParserService creates a new playlist source. A nil client lets the
// library use its own HTTP client.
func NewYTDLPParserService(httpClient *http.Client) *YTDLPParserService {
	return &YTDLPParserService{httpClient: httpClient}
}

// PlaylistEntries returns all entries of the playlist, in playlist order.
// Items without a video ID are skipped.
func (y *YTDLPParserService) PlaylistEntries(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error) {
	d := ytdlp.New()
	if y.httpClient != nil {
		d = d.WithHTTPClient(y.httpClient)
	}

	items, err := d.GetPlaylistItemsAll(ctx, playlistID, AllPlaylistItems)
	if err != nil {
		return nil, err
	}
	log.Printf("playlist %s: %d items", playlistID, len(items))

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		id := strings.TrimSpace(it.VideoID)
		if id == "" {
			continue
		}
		entries = append(entries, model.PlaylistEntry{
			VideoID: id,
			Title:   it.Title,
			URL:     fmt.Sprintf(model.YouTubeWatchURLTemplate, id),
		})
	}
	return entries, nil
}
