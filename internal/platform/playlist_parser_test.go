package platform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-get/internal/model"
)

type fakePlaylistSource struct {
	entries   []model.PlaylistEntry
	err       error
	requested []string
}

func (f *fakePlaylistSource) PlaylistEntries(_ context.Context, playlistID string) ([]model.PlaylistEntry, error) {
	f.requested = append(f.requested, playlistID)
	return f.entries, f.err
}

func TestExpandPlaylist(t *testing.T) {
	source := &fakePlaylistSource{entries: []model.PlaylistEntry{
		{VideoID: "v1", URL: "https://www.youtube.com/watch?v=v1"},
		{VideoID: "v2", URL: "https://www.youtube.com/watch?v=v2"},
		{VideoID: "v3", URL: "https://www.youtube.com/watch?v=v3"},
	}}
	service := NewPlaylistParserService(source)

	urls, err := service.ExpandPlaylist(context.Background(), "https://www.youtube.com/watch?v=v2&list=PLxyz&index=2")
	require.NoError(t, err)

	assert.Equal(t, []string{"PLxyz"}, source.requested)
	assert.Equal(t, []string{
		"https://www.youtube.com/watch?v=v1",
		"https://www.youtube.com/watch?v=v2",
		"https://www.youtube.com/watch?v=v3",
	}, urls)
}

func TestParsePlaylist(t *testing.T) {
	source := &fakePlaylistSource{entries: []model.PlaylistEntry{{VideoID: "v1", URL: "https://www.youtube.com/watch?v=v1"}}}
	service := NewPlaylistParserService(source)

	playlist, err := service.ParsePlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLabc")
	require.NoError(t, err)
	assert.Equal(t, "PLabc", playlist.ID)
	assert.Equal(t, "https://www.youtube.com/playlist?list=PLabc", playlist.URL)
	assert.Len(t, playlist.Entries, 1)
}

func TestExpandPlaylist_SourceErrorPropagates(t *testing.T) {
	sourceErr := errors.New("playlist is private")
	service := NewPlaylistParserService(&fakePlaylistSource{err: sourceErr})

	_, err := service.ExpandPlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLabc")
	assert.Same(t, sourceErr, err)
}

func TestExpandPlaylist_InvalidURL(t *testing.T) {
	source := &fakePlaylistSource{}
	service := NewPlaylistParserService(source)

	tests := []struct {
		name string
		url  string
	}{
		{name: "no playlist marker", url: "https://www.youtube.com/watch?v=abc"},
		{name: "empty playlist id", url: "https://www.youtube.com/playlist?list="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ExpandPlaylist(context.Background(), tt.url)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, source.requested)
}
