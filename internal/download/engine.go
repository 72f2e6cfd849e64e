package download

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/m-mizutani/goerr/v2"
	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/model"
)

// DefaultProgressInterval is how often yt-dlp progress is sampled
const DefaultProgressInterval = 250 * time.Millisecond

const stderrErrorPrefix = "ERROR:"

// YTDLPEngine runs yt-dlp through go-ytdlp
type YTDLPEngine struct {
	logger   *zap.Logger
	interval time.Duration
}

// NewYTDLPEngine creates an engine backed by the yt-dlp executable
func NewYTDLPEngine(logger *zap.Logger) *YTDLPEngine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &YTDLPEngine{
		logger:   logger.Named("ytdlp"),
		interval: DefaultProgressInterval,
	}
}

// SetProgressInterval changes the progress sampling frequency
func (e *YTDLPEngine) SetProgressInterval(interval time.Duration) {
	if interval > 0 {
		e.interval = interval
	}
}

// Download runs yt-dlp for a single URL
func (e *YTDLPEngine) Download(ctx context.Context, url string, opts Options, onProgress ProgressFunc) error {
	dl := ytdlp.New().
		Output(opts.OutputTemplate).
		Format(opts.FormatSelector).
		MergeOutputFormat(opts.MergeContainer)

	if opts.SingleItemOnly {
		dl.NoPlaylist()
	}

	dl.ProgressFunc(e.interval, func(update ytdlp.ProgressUpdate) {
		if onProgress != nil {
			onProgress(progressEvent(update))
		}
	})

	e.logger.Debug("running yt-dlp",
		zap.String("url", url),
		zap.String("format", opts.FormatSelector),
		zap.String("merge", opts.MergeContainer),
		zap.Bool("no_playlist", opts.SingleItemOnly),
	)

	result, err := dl.Run(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		stderr := ""
		if result != nil {
			stderr = result.Stderr
		}
		return &EngineError{Err: errors.New(engineMessage(stderr, err))}
	}

	return nil
}

// progressEvent converts a go-ytdlp update into the engine-neutral event
func progressEvent(update ytdlp.ProgressUpdate) model.ProgressEvent {
	ev := model.ProgressEvent{
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
	}
	switch update.Status {
	case ytdlp.ProgressStatusDownloading:
		ev.Status = model.ProgressDownloading
	case ytdlp.ProgressStatusFinished:
		ev.Status = model.ProgressFinished
	default:
		ev.Status = model.ProgressStatus(update.Status)
	}
	return ev
}

// engineMessage picks the last "ERROR:" line yt-dlp printed, falling back to err
func engineMessage(stderr string, err error) string {
	var last string
	scanner := bufio.NewScanner(strings.NewReader(stderr))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, stderrErrorPrefix) {
			last = line
		}
	}
	if last != "" {
		return last
	}
	if err != nil {
		return err.Error()
	}
	return "unknown yt-dlp failure"
}

// EngineInstall describes the resolved yt-dlp executable
type EngineInstall struct {
	Executable string
	Downloaded bool // fetched during this call rather than found on disk
}

type installFunc func(ctx context.Context, opts *ytdlp.InstallOptions) (*ytdlp.ResolvedInstall, error)

// EngineInstaller resolves the yt-dlp executable and installs it when missing
type EngineInstaller struct {
	logger  *zap.Logger
	install installFunc
}

// NewEngineInstaller creates an installer backed by go-ytdlp
func NewEngineInstaller(logger *zap.Logger) *EngineInstaller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EngineInstaller{
		logger:  logger.Named("install"),
		install: ytdlp.Install,
	}
}

// Installed reports whether a usable yt-dlp is already present, either in the
// go-ytdlp cache or on PATH. It never downloads.
func (i *EngineInstaller) Installed(ctx context.Context) bool {
	_, err := i.install(ctx, &ytdlp.InstallOptions{DisableDownload: true})
	if err != nil {
		i.logger.Debug("yt-dlp not resolved locally", zap.Error(err))
		return false
	}
	return true
}

// Ensure makes sure a yt-dlp executable is available, downloading it into the
// user cache when missing
func (i *EngineInstaller) Ensure(ctx context.Context) (EngineInstall, error) {
	resolved, err := i.install(ctx, nil)
	if err != nil {
		return EngineInstall{}, goerr.Wrap(err, "failed to install yt-dlp")
	}

	i.logger.Info("yt-dlp ready",
		zap.String("executable", resolved.Executable),
		zap.Bool("downloaded", resolved.Downloaded),
	)
	return EngineInstall{Executable: resolved.Executable, Downloaded: resolved.Downloaded}, nil
}

// EnsureEngine is Ensure on a default installer
func EnsureEngine(ctx context.Context, logger *zap.Logger) (EngineInstall, error) {
	return NewEngineInstaller(logger).Ensure(ctx)
}
