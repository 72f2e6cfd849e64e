package download

import (
	"path/filepath"

	"github.com/ytget/tubeflow/internal/model"
)

// OutputFilenameTemplate is resolved by yt-dlp to "<title>.<extension>"
const OutputFilenameTemplate = "%(title)s.%(ext)s"

// Format selectors understood by yt-dlp's -f option
const (
	SelectorBest  = "bestvideo+bestaudio/best"
	Selector720p  = "bestvideo[height<=720]+bestaudio/best[height<=720]"
	Selector1080p = "bestvideo[height<=1080]+bestaudio/best[height<=1080]"
)

// Merge containers for --merge-output-format
const (
	ContainerMP4  = "mp4"
	ContainerWebM = "webm"
)

var qualitySelectors = map[model.Quality]string{
	model.QualityBest:  SelectorBest,
	model.Quality720p:  Selector720p,
	model.Quality1080p: Selector1080p,
}

// Options is the record handed to the engine for one request
type Options struct {
	OutputTemplate string
	FormatSelector string
	MergeContainer string
	SingleItemOnly bool
}

// BuildOptions derives engine options from a request
func BuildOptions(req model.DownloadRequest) Options {
	return Options{
		OutputTemplate: filepath.Join(req.Folder, OutputFilenameTemplate),
		FormatSelector: FormatSelector(req.Quality),
		MergeContainer: MergeContainer(req.Format),
		SingleItemOnly: !req.Playlist,
	}
}

// FormatSelector returns the yt-dlp selector for a quality; unknown values get Best
func FormatSelector(q model.Quality) string {
	if s, ok := qualitySelectors[q]; ok {
		return s
	}
	return SelectorBest
}

// MergeContainer returns the output container for a format
func MergeContainer(f model.Format) string {
	if f == model.FormatMP4 {
		return ContainerMP4
	}
	return ContainerWebM
}
