package model

import (
	"fmt"
	"strings"
)

// Format is the output container chosen by the user
type Format string

const (
	FormatMP4  Format = "MP4"
	FormatWebM Format = "WebM"
)

// Quality caps the video height the engine may select
type Quality string

const (
	QualityBest  Quality = "Best"
	Quality720p  Quality = "720p"
	Quality1080p Quality = "1080p"
)

// Defaults used by the form when nothing was persisted
const (
	DefaultFormat  = FormatMP4
	DefaultQuality = QualityBest
)

// Formats returns the selectable formats in display order
func Formats() []Format {
	return []Format{FormatMP4, FormatWebM}
}

// Qualities returns the selectable qualities in display order
func Qualities() []Quality {
	return []Quality{QualityBest, Quality720p, Quality1080p}
}

// ParseFormat maps a display value back to a Format
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format: %q", s)
}

// ParseQuality maps a display value back to a Quality
func ParseQuality(s string) (Quality, error) {
	for _, q := range Qualities() {
		if strings.EqualFold(string(q), strings.TrimSpace(s)) {
			return q, nil
		}
	}
	return "", fmt.Errorf("unknown quality: %q", s)
}

// DownloadRequest is a snapshot of the form taken when Download is clicked.
// It is passed by value and never modified after submission.
type DownloadRequest struct {
	URL      string
	Folder   string
	Playlist bool
	Format   Format
	Quality  Quality
}

// Normalized returns a copy with whitespace trimmed and empty enums defaulted
func (r DownloadRequest) Normalized() DownloadRequest {
	r.URL = strings.TrimSpace(r.URL)
	r.Folder = strings.TrimSpace(r.Folder)
	if r.Format == "" {
		r.Format = DefaultFormat
	}
	if r.Quality == "" {
		r.Quality = DefaultQuality
	}
	return r
}

// String returns a short description for logs
func (r DownloadRequest) String() string {
	return fmt.Sprintf("%s -> %s [%s/%s playlist=%t]", r.URL, r.Folder, r.Format, r.Quality, r.Playlist)
}
