package download

import (
	"context"
	"time"

	"github.com/ytget/tubeflow/internal/model"
)

// Outcome is the terminal result of a request
type Outcome struct {
	Err error
}

// Succeeded reports whether the download completed
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Failure classifies the outcome for display
func (o Outcome) Failure() Failure {
	return Classify(o.Err)
}

// Handle tracks one in-flight request.
// Progress must be drained by the caller; it is closed before Done fires.
type Handle struct {
	ID        string
	Request   model.DownloadRequest
	Options   Options
	StartedAt time.Time

	progress chan float64
	done     chan struct{}
	outcome  Outcome
	cancel   context.CancelFunc
}

// Progress delivers projected percentages in engine order
func (h *Handle) Progress() <-chan float64 {
	return h.progress
}

// Done is closed once the outcome is available
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until the request ends and returns its outcome
func (h *Handle) Wait() Outcome {
	<-h.done
	return h.outcome
}

// Cancel asks the engine to stop; the outcome will carry context.Canceled
func (h *Handle) Cancel() {
	h.cancel()
}

func (h *Handle) finish(outcome Outcome) {
	h.outcome = outcome
	close(h.done)
}
