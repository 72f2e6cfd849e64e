package session

import (
	"sync"

	"github.com/ytget/tubeflow/internal/model"
)

// NoticeKind selects the notification surface
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
	NoticeSuccess
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeInfo:
		return "info"
	case NoticeError:
		return "error"
	case NoticeSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// View renders UIState changes and notifications. All methods are called on
// the event loop.
type View interface {
	SetControlsEnabled(enabled bool)
	SetProgress(percent float64)
	SetPhase(phase model.Phase)
	Notify(kind NoticeKind, title, message string)
}

// Dispatcher runs f on the event loop
type Dispatcher func(f func())

// Serial returns a dispatcher that runs functions inline, one at a time.
// It stands in for an event loop in the terminal front-end and in tests.
func Serial() Dispatcher {
	var mu sync.Mutex
	return func(f func()) {
		mu.Lock()
		defer mu.Unlock()
		f()
	}
}
