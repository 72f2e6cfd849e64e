package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/download"
	"github.com/ytget/tubeflow/internal/model"
)

// Notification texts
const (
	TitleSuccess   = "Success"
	MessageSuccess = "Download completed successfully!"
)

// Controller is the main component: it owns UIState and is the only writer of it
type Controller struct {
	downloader download.Downloader
	view       View
	dispatch   Dispatcher
	logger     *zap.Logger

	state   model.UIState
	current *download.Handle
}

// NewController creates a controller for one window
func NewController(downloader download.Downloader, view View, dispatch Dispatcher, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatch == nil {
		dispatch = Serial()
	}
	return &Controller{
		downloader: downloader,
		view:       view,
		dispatch:   dispatch,
		logger:     logger.Named("session"),
		state:      model.NewUIState(model.ThemeLight),
	}
}

// State returns the current UI state. Call it on the event loop.
func (c *Controller) State() model.UIState {
	return c.state
}

// SetTheme records the active theme. Call it on the event loop.
func (c *Controller) SetTheme(theme model.Theme) {
	c.state.Theme = theme
}

// Submit starts a download for req. It must be called on the event loop.
// The returned channel is closed after the outcome has been applied to the view.
// While a request is in flight it fails with download.ErrBusy.
func (c *Controller) Submit(ctx context.Context, req model.DownloadRequest) (<-chan struct{}, error) {
	var h *download.Handle
	err := download.ErrBusy
	if !c.state.Phase.IsActive() {
		h, err = c.downloader.Start(ctx, req)
	}
	if err != nil {
		failure := download.Classify(err)
		c.logger.Warn("download not started", zap.Error(err), zap.Stringer("kind", failure.Kind))
		c.view.Notify(NoticeError, failure.Title, failure.Message)
		return nil, err
	}

	c.current = h
	c.state.Enabled = false
	c.state.Progress = 0
	c.state.Phase = model.PhaseDownloading
	c.view.SetControlsEnabled(false)
	c.view.SetProgress(0)
	c.view.SetPhase(model.PhaseDownloading)

	settled := make(chan struct{})
	go c.pump(h, settled)
	return settled, nil
}

// Shutdown cancels the in-flight download, if any. Call it on the event loop.
func (c *Controller) Shutdown() {
	if c.current != nil {
		c.logger.Info("cancelling in-flight download", zap.String("id", c.current.ID))
		c.current.Cancel()
	}
}

// pump forwards handle events onto the event loop, in order
func (c *Controller) pump(h *download.Handle, settled chan struct{}) {
	for percent := range h.Progress() {
		p := percent
		c.dispatch(func() {
			c.applyProgress(p)
		})
	}

	outcome := h.Wait()
	c.dispatch(func() {
		defer close(settled)
		c.applyOutcome(h, outcome)
	})
}

func (c *Controller) applyProgress(percent float64) {
	c.state.Progress = percent
	c.view.SetProgress(percent)
}

func (c *Controller) applyOutcome(h *download.Handle, outcome download.Outcome) {
	if c.current == h {
		c.current = nil
	}

	c.state.Enabled = true
	c.view.SetControlsEnabled(true)

	if outcome.Succeeded() {
		c.state.Phase = model.PhaseCompleted
		c.state.Progress = 100
		c.view.SetProgress(100)
		c.view.SetPhase(model.PhaseCompleted)
		c.view.Notify(NoticeSuccess, TitleSuccess, MessageSuccess)
		return
	}

	failure := outcome.Failure()
	c.logger.Info("download ended with failure",
		zap.String("id", h.ID),
		zap.Stringer("kind", failure.Kind),
		zap.String("message", failure.Message),
	)
	c.state.Phase = model.PhaseFailed
	c.view.SetPhase(model.PhaseFailed)
	c.view.Notify(NoticeError, failure.Title, failure.Message)
}
