package download

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/model"
)

// HandleIDPrefix prefixes every handle id
const HandleIDPrefix = "dl-"

// DefaultProgressBuffer is the capacity of a handle's progress channel
const DefaultProgressBuffer = 64

// Orchestrator runs at most one request at a time on a dedicated goroutine
type Orchestrator struct {
	engine         Engine
	logger         *zap.Logger
	progressBuffer int
	busy           atomic.Bool
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgressBuffer sets the progress channel capacity
func WithProgressBuffer(n int) Option {
	return func(o *Orchestrator) {
		if n >= 0 {
			o.progressBuffer = n
		}
	}
}

// NewOrchestrator creates an orchestrator around an engine
func NewOrchestrator(engine Engine, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		engine:         engine,
		logger:         zap.NewNop(),
		progressBuffer: DefaultProgressBuffer,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Busy reports whether a request is in flight
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// Start validates req and runs it in the background
func (o *Orchestrator) Start(ctx context.Context, req model.DownloadRequest) (*Handle, error) {
	req = req.Normalized()
	if err := Validate(req); err != nil {
		o.logger.Warn("download rejected", zap.Error(err))
		return nil, err
	}

	if !o.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	runCtx, cancel := context.WithCancel(ctx)
	h := &Handle{
		ID:        generateHandleID(),
		Request:   req,
		Options:   BuildOptions(req),
		StartedAt: time.Now(),
		progress:  make(chan float64, o.progressBuffer),
		done:      make(chan struct{}),
		cancel:    cancel,
	}

	o.logger.Info("download started",
		zap.String("id", h.ID),
		zap.String("url", req.URL),
		zap.String("folder", req.Folder),
		zap.String("format", string(req.Format)),
		zap.String("quality", string(req.Quality)),
		zap.Bool("playlist", req.Playlist),
	)

	go o.run(runCtx, h)
	return h, nil
}

func (o *Orchestrator) run(ctx context.Context, h *Handle) {
	defer h.cancel()

	err := o.execute(ctx, h)
	close(h.progress)
	o.busy.Store(false)

	if err != nil {
		o.logger.Error("download failed", zap.String("id", h.ID), zap.Error(err))
	} else {
		o.logger.Info("download completed", zap.String("id", h.ID), zap.Duration("elapsed", time.Since(h.StartedAt)))
	}
	h.finish(Outcome{Err: err})
}

// execute invokes the engine exactly once; panics become unclassified errors
func (o *Orchestrator) execute(ctx context.Context, h *Handle) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	return o.engine.Download(ctx, h.Request.URL, h.Options, func(ev model.ProgressEvent) {
		percent, ok := Project(ev)
		if !ok {
			return
		}
		select {
		case h.progress <- percent:
		case <-ctx.Done():
		}
	})
}

// generateHandleID returns a time-ordered unique id
func generateHandleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(HandleIDPrefix+"%d", time.Now().UnixNano())
	}
	return HandleIDPrefix + id.String()
}
