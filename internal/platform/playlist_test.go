package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/tubeflow/internal/model"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "playlist URL",
			url:      "https://www.youtube.com/playlist?list=PLrAXtmRdnEQy6nuLMOVuFzQj0pQYQXVgG",
			expected: "PLrAXtmRdnEQy6nuLMOVuFzQj0pQYQXVgG",
		},
		{
			name:     "watch URL with list and index",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=2",
			expected: "PL123",
		},
		{
			name:     "single video",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: "",
		},
		{
			name:     "empty",
			url:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractPlaylistID(tt.url))
			assert.Equal(t, tt.expected != "", IsPlaylistURL(tt.url))
		})
	}
}

func TestPreview_NotPlaylist(t *testing.T) {
	p := NewPlaylistPreviewer()
	assert.Equal(t, DefaultPreviewTimeout, p.timeout)

	preview, err := p.Preview(context.Background(), "https://www.youtube.com/watch?v=abc")
	assert.Error(t, err)
	assert.Nil(t, preview)
}

func TestSetLimit(t *testing.T) {
	p := NewPlaylistPreviewer()
	p.SetLimit(-3)
	assert.Equal(t, 0, p.limit)
	p.SetLimit(5)
	assert.Equal(t, 5, p.limit)
}

func TestPlaylistTitle(t *testing.T) {
	assert.Equal(t, DefaultPlaylistName, playlistTitle(nil))

	one := []model.PlaylistEntry{{Title: "Intro"}}
	assert.Equal(t, "Intro Playlist", playlistTitle(one))

	shared := []model.PlaylistEntry{
		{Title: "Go Concurrency Course - Part 1"},
		{Title: "Go Concurrency Course - Part 2"},
	}
	assert.Equal(t, "Go Concurrency Course - Part Playlist", playlistTitle(shared))

	short := []model.PlaylistEntry{{Title: "Abc 1"}, {Title: "Abc 2"}}
	assert.Equal(t, "Abc 1 Playlist", playlistTitle(short))
}

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "ab", commonPrefix("abc", "abd"))
	assert.Equal(t, "abc", commonPrefix("abc", "abcdef"))
	assert.Equal(t, "", commonPrefix("x", "y"))
}
