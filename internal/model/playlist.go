package model

// YouTubeWatchURLTemplate builds a watch URL from a video ID
const YouTubeWatchURLTemplate = "https://www.youtube.com/watch?v=%s"

// PlaylistEntry represents a single video in a playlist
type PlaylistEntry struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// Playlist represents a resolved YouTube playlist
type Playlist struct {
	ID      string          `json:"id"`
	URL     string          `json:"url"`
	Entries []PlaylistEntry `json:"entries"`
}

// NewPlaylist creates an empty playlist for the given ID and URL
func NewPlaylist(id, url string) *Playlist {
	return &Playlist{
		ID:      id,
		URL:     url,
		Entries: make([]PlaylistEntry, 0),
	}
}

// AddEntry appends an entry, keeping playlist order
func (p *Playlist) AddEntry(entry PlaylistEntry) {
	p.Entries = append(p.Entries, entry)
}

// ItemURLs returns the entry URLs in playlist order
func (p *Playlist) ItemURLs() []string {
	urls := make([]string, 0, len(p.Entries))
	for _, e := range p.Entries {
		urls = append(urls, e.URL)
	}
	return urls
}
