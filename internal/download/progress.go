package download

import "github.com/ytget/tubeflow/internal/model"

// Project maps an engine event to a completion percentage.
// ok is false when the event carries no usable progress.
func Project(ev model.ProgressEvent) (percent float64, ok bool) {
	switch ev.Status {
	case model.ProgressFinished:
		return 100, true
	case model.ProgressDownloading:
		if !ev.HasTotal() {
			return 0, false
		}
		percent = float64(ev.DownloadedBytes) / float64(ev.TotalBytes) * 100
		return clampPercent(percent), true
	default:
		return 0, false
	}
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
