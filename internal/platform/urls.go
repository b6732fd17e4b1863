package platform

import (
	"net/url"
	"strings"
)

// URL parameters
const (
	PlaylistURLParam = "list="
	PlaylistQueryKey = "list"
	IndexQueryKey    = "index"
	ParamSeparator   = "&"
)

// IsPlaylistURL reports whether the raw input carries a playlist marker
func IsPlaylistURL(rawURL string) bool {
	return strings.Contains(rawURL, PlaylistURLParam)
}

// StripPlaylistParams removes the list and index query parameters so a single
// video link is never treated as a playlist position. The remaining
// parameters keep their order and encoding. Inputs that are not absolute URLs
// are returned unchanged.
func StripPlaylistParams(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return rawURL
	}

	params := strings.Split(u.RawQuery, ParamSeparator)
	kept := params[:0]
	for _, p := range params {
		if isPlaylistParam(p) {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == len(params) {
		return rawURL
	}
	u.RawQuery = strings.Join(kept, ParamSeparator)
	return u.String()
}

// isPlaylistParam reports whether a raw key=value pair is list or index
func isPlaylistParam(param string) bool {
	key, _, _ := strings.Cut(param, "=")
	if k, err := url.QueryUnescape(key); err == nil {
		key = k
	}
	return key == PlaylistQueryKey || key == IndexQueryKey
}

// ExtractPlaylistID extracts the playlist ID from a YouTube playlist URL.
// Supported forms:
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=2
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		if id := u.Query().Get(PlaylistQueryKey); id != "" {
			return id
		}
	}

	// not a parseable URL, take everything after list= up to the next parameter
	parts := strings.SplitN(rawURL, PlaylistURLParam, 2)
	if len(parts) < 2 {
		return ""
	}
	id := parts[1]
	if i := strings.Index(id, ParamSeparator); i >= 0 {
		id = id[:i]
	}
	return id
}
