package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/tubeflow/internal/model"
)

// Timeout constants
const (
	DefaultPreviewTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Playlist title constants
const (
	DefaultPlaylistName = "Unknown Playlist"
	MinPrefixLength     = 10
	PlaylistSuffix      = " Playlist"
)

// PlaylistPreviewer lists the entries of a YouTube playlist URL
type PlaylistPreviewer struct {
	timeout time.Duration
	limit   int
}

// NewPlaylistPreviewer creates a previewer with the default timeout and no entry limit
func NewPlaylistPreviewer() *PlaylistPreviewer {
	return &PlaylistPreviewer{
		timeout: DefaultPreviewTimeout,
	}
}

// SetLimit caps the number of entries fetched; zero means all
func (p *PlaylistPreviewer) SetLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	p.limit = limit
}

// IsPlaylistURL reports whether url names a playlist
func IsPlaylistURL(url string) bool {
	return ExtractPlaylistID(url) != ""
}

// ExtractPlaylistID extracts the playlist ID from a watch or playlist URL
func ExtractPlaylistID(url string) string {
	_, after, found := strings.Cut(url, PlaylistParam)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(after, ParamSeparator)
	return id
}

// Preview fetches the playlist entries for url
func (p *PlaylistPreviewer) Preview(ctx context.Context, url string) (*model.PlaylistPreview, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, goerr.New("not a playlist URL", goerr.V("url", url))
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, p.limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get playlist items", goerr.V("playlist_id", playlistID))
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, model.PlaylistEntry{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}

	return &model.PlaylistPreview{
		ID:      playlistID,
		Title:   playlistTitle(entries),
		URL:     url,
		Entries: entries,
	}, nil
}

// playlistTitle derives a title from the common prefix of the first two entries
func playlistTitle(entries []model.PlaylistEntry) string {
	if len(entries) == 0 {
		return DefaultPlaylistName
	}
	if len(entries) > 1 {
		prefix := commonPrefix(entries[0].Title, entries[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return entries[0].Title + PlaylistSuffix
}

func commonPrefix(s1, s2 string) string {
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:n]
}
