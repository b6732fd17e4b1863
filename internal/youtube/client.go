// Package youtube resolves YouTube video links into stream metadata and media
// streams on top of github.com/kkdai/youtube/v2.
package youtube

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	yt "github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-get/internal/errs"
	"github.com/ytget/yt-get/internal/model"
)

// InvalidURLMessage is reported for links that are not recognizable videos
const InvalidURLMessage = "Invalid YouTube URL."

// MIME type prefixes used to classify renditions
const (
	mimeVideoPrefix = "video/"
	mimeAudioPrefix = "audio/"
	codecsSeparator = ","
)

// validHosts are the hosts accepted as video links
var validHosts = map[string]bool{
	"youtube.com":        true,
	"www.youtube.com":    true,
	"m.youtube.com":      true,
	"music.youtube.com":  true,
	"gaming.youtube.com": true,
	"youtu.be":           true,
}

// Client resolves stream info and opens media streams
type Client struct {
	yt *yt.Client
}

// NewClient creates a client. A nil httpClient uses http.DefaultClient.
func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{yt: &yt.Client{HTTPClient: httpClient}}
}

// ValidateURL fails with an invalid-argument error unless rawURL is a
// recognizable YouTube video link
func (c *Client) ValidateURL(rawURL string) error {
	if !IsVideoURL(rawURL) {
		return errs.InvalidArgument(InvalidURLMessage)
	}
	return nil
}

// IsVideoURL reports whether rawURL points at a single YouTube video
func IsVideoURL(rawURL string) bool {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if !validHosts[strings.ToLower(u.Hostname())] {
		return false
	}
	_, err = yt.ExtractVideoID(rawURL)
	return err == nil
}

// GetInfo resolves the metadata and rendition list of a video
func (c *Client) GetInfo(ctx context.Context, videoURL string) (*model.StreamInfo, error) {
	video, err := c.yt.GetVideoContext(ctx, videoURL)
	if err != nil {
		return nil, err
	}
	log.Printf("resolved %s: %q, %d formats", video.ID, video.Title, len(video.Formats))

	return streamInfoFromVideo(video), nil
}

// OpenStream opens the media stream of a rendition and returns it together
// with the declared size in bytes (0 when unknown)
func (c *Client) OpenStream(ctx context.Context, info *model.StreamInfo, rendition model.Rendition) (io.ReadCloser, int64, error) {
	video, ok := info.Handle.(*yt.Video)
	if !ok || video == nil {
		return nil, 0, fmt.Errorf("stream info for %s was not resolved by this client", info.ID)
	}

	format := findFormat(video.Formats, rendition.Itag)
	if format == nil {
		return nil, 0, fmt.Errorf("format itag %d not found for video %s", rendition.Itag, video.ID)
	}

	return c.yt.GetStreamContext(ctx, video, format)
}

// streamInfoFromVideo maps a library video onto the domain stream info
func streamInfoFromVideo(video *yt.Video) *model.StreamInfo {
	renditions := make([]model.Rendition, 0, len(video.Formats))
	for i := range video.Formats {
		renditions = append(renditions, renditionFromFormat(&video.Formats[i]))
	}
	return &model.StreamInfo{
		ID:         video.ID,
		Title:      video.Title,
		Author:     video.Author,
		Duration:   video.Duration,
		Renditions: renditions,
		Handle:     video,
	}
}

// renditionFromFormat classifies a library format
func renditionFromFormat(f *yt.Format) model.Rendition {
	mime := strings.ToLower(f.MimeType)
	hasVideo := strings.HasPrefix(mime, mimeVideoPrefix)
	hasAudio := f.AudioChannels > 0 || strings.HasPrefix(mime, mimeAudioPrefix)

	// progressive formats list two codecs, e.g. codecs="avc1.42001E, mp4a.40.2"
	if hasVideo && !hasAudio && strings.Contains(mime, codecsSeparator) {
		hasAudio = true
	}

	return model.Rendition{
		Itag:          f.ItagNo,
		QualityLabel:  f.QualityLabel,
		MimeType:      f.MimeType,
		Bitrate:       f.Bitrate,
		ContentLength: f.ContentLength,
		HasVideo:      hasVideo,
		HasAudio:      hasAudio,
	}
}

func findFormat(formats yt.FormatList, itag int) *yt.Format {
	for i := range formats {
		if formats[i].ItagNo == itag {
			return &formats[i]
		}
	}
	return nil
}
