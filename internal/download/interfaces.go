package download

import (
	"context"

	"github.com/ytget/tubeflow/internal/model"
)

// Downloader starts one download at a time
type Downloader interface {
	// Start validates the request and, when valid, runs it in the background.
	// Validation failures are returned as *ValidationError and never reach the engine.
	Start(ctx context.Context, req model.DownloadRequest) (*Handle, error)
}

// Engine performs the actual fetch. It must call onProgress in the order events
// occur, and only before Download returns.
type Engine interface {
	Download(ctx context.Context, url string, opts Options, onProgress ProgressFunc) error
}

// ProgressFunc receives raw engine progress events
type ProgressFunc func(model.ProgressEvent)
