package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"MP4", FormatMP4, false},
		{"mp4", FormatMP4, false},
		{" WebM ", FormatWebM, false},
		{"webm", FormatWebM, false},
		{"mkv", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in      string
		want    Quality
		wantErr bool
	}{
		{"Best", QualityBest, false},
		{"best", QualityBest, false},
		{"720p", Quality720p, false},
		{"1080P", Quality1080p, false},
		{"480p", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuality(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDownloadRequest_Normalized(t *testing.T) {
	req := DownloadRequest{
		URL:    "  https://example.com/v \n",
		Folder: " /tmp/out ",
	}

	got := req.Normalized()

	assert.Equal(t, "https://example.com/v", got.URL)
	assert.Equal(t, "/tmp/out", got.Folder)
	assert.Equal(t, DefaultFormat, got.Format)
	assert.Equal(t, DefaultQuality, got.Quality)

	// the receiver is a copy
	assert.Equal(t, "  https://example.com/v \n", req.URL)
}

func TestParseTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("Dark"))
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme("Light"))
	assert.Equal(t, ThemeLight, ParseTheme(""))
	assert.Equal(t, ThemeLight, ParseTheme("solarized"))
}

func TestPlaylistPreview_Len(t *testing.T) {
	var nilPreview *PlaylistPreview
	assert.Equal(t, 0, nilPreview.Len())

	p := &PlaylistPreview{Entries: []PlaylistEntry{{VideoID: "a"}, {VideoID: "b"}}}
	assert.Equal(t, 2, p.Len())
}
