package model

// ProgressStatus is the engine-reported phase of a progress event
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
)

// ProgressEvent is one progress report from the engine.
// TotalBytes is zero when the engine does not know the size.
type ProgressEvent struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64
}

// HasTotal reports whether the total size is known
func (e ProgressEvent) HasTotal() bool {
	return e.TotalBytes > 0
}
