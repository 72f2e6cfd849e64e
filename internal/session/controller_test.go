package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/tubeflow/internal/download"
	"github.com/ytget/tubeflow/internal/model"
	"github.com/ytget/tubeflow/internal/session"
)

type notice struct {
	kind    session.NoticeKind
	title   string
	message string
}

// recordingView captures every call the controller makes
type recordingView struct {
	mu       sync.Mutex
	enabled  []bool
	progress []float64
	phases   []model.Phase
	notices  []notice
}

func (v *recordingView) SetControlsEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = append(v.enabled, enabled)
}

func (v *recordingView) SetProgress(percent float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.progress = append(v.progress, percent)
}

func (v *recordingView) SetPhase(phase model.Phase) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.phases = append(v.phases, phase)
}

func (v *recordingView) Notify(kind session.NoticeKind, title, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notices = append(v.notices, notice{kind, title, message})
}

func (v *recordingView) enableCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := 0
	for _, e := range v.enabled {
		if e {
			n++
		}
	}
	return n
}

type scriptedEngine struct {
	mu     sync.Mutex
	calls  int
	events []model.ProgressEvent
	err    error
	panicV any
}

func (e *scriptedEngine) Download(ctx context.Context, url string, opts download.Options, onProgress download.ProgressFunc) error {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	for _, ev := range e.events {
		onProgress(ev)
	}
	if e.panicV != nil {
		panic(e.panicV)
	}
	return e.err
}

func (e *scriptedEngine) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

func request() model.DownloadRequest {
	return model.DownloadRequest{
		URL:     "https://example.com/v",
		Folder:  "/tmp/out",
		Format:  model.FormatMP4,
		Quality: model.QualityBest,
	}
}

func waitSettled(t *testing.T, settled <-chan struct{}) {
	t.Helper()
	select {
	case <-settled:
	case <-time.After(2 * time.Second):
		t.Fatal("download did not settle")
	}
}

func TestController_Success(t *testing.T) {
	engine := &scriptedEngine{events: []model.ProgressEvent{
		{Status: model.ProgressDownloading, DownloadedBytes: 1, TotalBytes: 4},
		{Status: model.ProgressDownloading, DownloadedBytes: 2},
		{Status: model.ProgressDownloading, DownloadedBytes: 3, TotalBytes: 4},
		{Status: model.ProgressFinished},
	}}
	view := &recordingView{}
	dispatch := session.Serial()
	c := session.NewController(download.NewOrchestrator(engine), view, dispatch, nil)

	settled, err := c.Submit(context.Background(), request())
	require.NoError(t, err)
	waitSettled(t, settled)

	assert.Equal(t, []bool{false, true}, view.enabled)
	assert.Equal(t, []float64{0, 25, 75, 100, 100}, view.progress)
	assert.Equal(t, []model.Phase{model.PhaseDownloading, model.PhaseCompleted}, view.phases)
	require.Len(t, view.notices, 1)
	assert.Equal(t, notice{session.NoticeSuccess, session.TitleSuccess, session.MessageSuccess}, view.notices[0])

	dispatch(func() {
		state := c.State()
		assert.True(t, state.Enabled)
		assert.Equal(t, 100.0, state.Progress)
		assert.Equal(t, model.PhaseCompleted, state.Phase)
	})
}

func TestController_ReenablesExactlyOnce(t *testing.T) {
	tests := []struct {
		name        string
		engine      *scriptedEngine
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "engine error before any progress",
			engine:      &scriptedEngine{err: &download.EngineError{Err: errors.New("Network unreachable")}},
			wantTitle:   download.TitleDownloadError,
			wantMessage: "Network unreachable",
		},
		{
			name:        "javascript engine error",
			engine:      &scriptedEngine{err: &download.EngineError{Err: errors.New("JavaScript runtime error")}},
			wantTitle:   download.TitleError,
			wantMessage: download.MessageJavaScript,
		},
		{
			name: "unclassified error after progress",
			engine: &scriptedEngine{
				events: []model.ProgressEvent{{Status: model.ProgressDownloading, DownloadedBytes: 5, TotalBytes: 10}},
				err:    errors.New("permission denied"),
			},
			wantTitle:   download.TitleError,
			wantMessage: "permission denied",
		},
		{
			name:        "engine panic",
			engine:      &scriptedEngine{panicV: "nil map"},
			wantTitle:   download.TitleError,
			wantMessage: "nil map",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := &recordingView{}
			c := session.NewController(download.NewOrchestrator(tt.engine), view, session.Serial(), nil)

			settled, err := c.Submit(context.Background(), request())
			require.NoError(t, err)
			waitSettled(t, settled)

			assert.Equal(t, 1, view.enableCount())
			assert.Equal(t, true, view.enabled[len(view.enabled)-1])
			assert.Equal(t, model.PhaseFailed, view.phases[len(view.phases)-1])
			require.Len(t, view.notices, 1)
			assert.Equal(t, session.NoticeError, view.notices[0].kind)
			assert.Equal(t, tt.wantTitle, view.notices[0].title)
			assert.Equal(t, tt.wantMessage, view.notices[0].message)
			assert.Equal(t, 1, tt.engine.Calls())
		})
	}
}

func TestController_ValidationNeverStartsWork(t *testing.T) {
	tests := []struct {
		name    string
		req     model.DownloadRequest
		message string
	}{
		{"missing url", model.DownloadRequest{URL: "  ", Folder: "/tmp/out"}, download.MessageMissingURL},
		{"missing folder", model.DownloadRequest{URL: "https://example.com/v"}, download.MessageMissingFolder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &scriptedEngine{}
			view := &recordingView{}
			c := session.NewController(download.NewOrchestrator(engine), view, session.Serial(), nil)

			settled, err := c.Submit(context.Background(), tt.req)
			assert.Nil(t, settled)

			var verr *download.ValidationError
			require.ErrorAs(t, err, &verr)

			assert.Empty(t, view.enabled)
			assert.Empty(t, view.progress)
			require.Len(t, view.notices, 1)
			assert.Equal(t, session.NoticeError, view.notices[0].kind)
			assert.Equal(t, tt.message, view.notices[0].message)
			assert.Equal(t, 0, engine.Calls())
			assert.True(t, c.State().Enabled)
		})
	}
}

// blockingEngine waits until released or cancelled
type blockingEngine struct {
	started chan struct{}
}

func (e *blockingEngine) Download(ctx context.Context, url string, opts download.Options, onProgress download.ProgressFunc) error {
	close(e.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestController_ShutdownCancelsInFlight(t *testing.T) {
	engine := &blockingEngine{started: make(chan struct{})}
	view := &recordingView{}
	dispatch := session.Serial()
	c := session.NewController(download.NewOrchestrator(engine), view, dispatch, nil)

	settled, err := c.Submit(context.Background(), request())
	require.NoError(t, err)
	<-engine.started

	dispatch(func() {
		assert.False(t, c.State().Enabled)
		c.Shutdown()
	})
	waitSettled(t, settled)

	assert.Equal(t, 1, view.enableCount())
	require.Len(t, view.notices, 1)
	assert.Equal(t, download.MessageCanceled, view.notices[0].message)
}

func TestController_SetTheme(t *testing.T) {
	c := session.NewController(download.NewOrchestrator(&scriptedEngine{}), &recordingView{}, nil, nil)
	assert.Equal(t, model.ThemeLight, c.State().Theme)

	c.SetTheme(model.ThemeDark)
	assert.Equal(t, model.ThemeDark, c.State().Theme)
}

func TestNoticeKind_String(t *testing.T) {
	assert.Equal(t, "info", session.NoticeInfo.String())
	assert.Equal(t, "error", session.NoticeError.String())
	assert.Equal(t, "success", session.NoticeSuccess.String())
}

// countingDownloader records how often Start reaches the orchestrator
type countingDownloader struct {
	download.Downloader
	starts int
}

func (d *countingDownloader) Start(ctx context.Context, req model.DownloadRequest) (*download.Handle, error) {
	d.starts++
	return d.Downloader.Start(ctx, req)
}

func TestController_SubmitWhileActiveIsBusy(t *testing.T) {
	engine := &blockingEngine{started: make(chan struct{})}
	downloader := &countingDownloader{Downloader: download.NewOrchestrator(engine)}
	view := &recordingView{}
	dispatch := session.Serial()
	c := session.NewController(downloader, view, dispatch, nil)

	settled, err := c.Submit(context.Background(), request())
	require.NoError(t, err)
	<-engine.started

	dispatch(func() {
		again, err := c.Submit(context.Background(), request())
		assert.Nil(t, again)
		assert.ErrorIs(t, err, download.ErrBusy)
		assert.Equal(t, model.PhaseDownloading, c.State().Phase)
		c.Shutdown()
	})
	waitSettled(t, settled)

	assert.Equal(t, 1, downloader.starts)
	assert.Equal(t, 1, view.enableCount())
	require.Len(t, view.notices, 2)
	assert.Equal(t, session.NoticeError, view.notices[0].kind)
	assert.Equal(t, download.ErrBusy.Error(), view.notices[0].message)
}
