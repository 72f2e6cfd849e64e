package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/download"
	"github.com/ytget/tubeflow/internal/model"
	"github.com/ytget/tubeflow/internal/platform"
	"github.com/ytget/tubeflow/internal/session"
)

// EnvOut sets the default output folder of get
const EnvOut = "TUBEFLOW_OUT"

func cmdGet(d *deps) *cli.Command {
	var (
		out         string
		playlist    bool
		format      string
		quality     string
		skipInstall bool
		interval    time.Duration
	)

	defaultOut, _ := platform.GetHomeDownloadsDir()

	return &cli.Command{
		Name:      "get",
		Aliases:   []string{"g"},
		Usage:     "Download a URL from the terminal",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Download folder",
				Value:       defaultOut,
				Destination: &out,
				Sources:     cli.EnvVars(EnvOut),
			},
			&cli.BoolFlag{
				Name:        "playlist",
				Aliases:     []string{"p"},
				Usage:       "Download the whole playlist the URL points to",
				Destination: &playlist,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "Container format (MP4, WebM)",
				Value:       string(model.DefaultFormat),
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "quality",
				Aliases:     []string{"q"},
				Usage:       "Quality (Best, 720p, 1080p)",
				Value:       string(model.DefaultQuality),
				Destination: &quality,
			},
			&cli.DurationFlag{
				Name:        "progress-interval",
				Usage:       "How often yt-dlp progress is sampled",
				Value:       download.DefaultProgressInterval,
				Destination: &interval,
			},
			&cli.BoolFlag{
				Name:        "skip-install",
				Usage:       "Do not download yt-dlp when it is missing",
				Destination: &skipInstall,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := model.ParseFormat(format)
			if err != nil {
				return goerr.Wrap(err, "invalid --format")
			}
			q, err := model.ParseQuality(quality)
			if err != nil {
				return goerr.Wrap(err, "invalid --quality")
			}

			req := model.DownloadRequest{
				URL:      c.Args().First(),
				Folder:   out,
				Playlist: playlist,
				Format:   f,
				Quality:  q,
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !skipInstall && req.Normalized().URL != "" {
				if _, err := download.EnsureEngine(ctx, d.logger); err != nil {
					return err
				}
			}

			engine := download.NewYTDLPEngine(d.logger)
			engine.SetProgressInterval(interval)
			orchestrator := download.NewOrchestrator(engine, download.WithLogger(d.logger))
			return runHeadless(ctx, orchestrator, req, os.Stdout, d.logger)
		},
	}
}

// runHeadless drives one download through the same session flow as the window
func runHeadless(ctx context.Context, downloader download.Downloader, req model.DownloadRequest, w io.Writer, logger *zap.Logger) error {
	if folder := req.Normalized().Folder; folder != "" {
		if err := platform.CreateDirectoryIfNotExists(folder); err != nil {
			return err
		}
	}

	view := newTerminalView(w)
	ctrl := session.NewController(downloader, view, session.Serial(), logger)

	settled, err := ctrl.Submit(ctx, req)
	if err != nil {
		return err
	}
	<-settled

	if view.failure != "" {
		return goerr.New("download failed", goerr.V("reason", view.failure))
	}
	return nil
}

// terminalView renders session state as a single updating progress line
type terminalView struct {
	w        io.Writer
	percent  int
	drawn    bool
	failure  string
	progress *color.Color
	ok       *color.Color
	bad      *color.Color
	info     *color.Color
}

var _ session.View = (*terminalView)(nil)

func newTerminalView(w io.Writer) *terminalView {
	return &terminalView{
		w:        w,
		percent:  -1,
		progress: color.New(color.FgCyan),
		ok:       color.New(color.FgGreen, color.Bold),
		bad:      color.New(color.FgRed, color.Bold),
		info:     color.New(color.FgYellow),
	}
}

func (v *terminalView) SetControlsEnabled(bool) {}

func (v *terminalView) SetProgress(percent float64) {
	p := int(percent)
	if p == v.percent {
		return
	}
	v.percent = p
	v.drawn = true
	v.progress.Fprintf(v.w, "\rDownloading... %3d%%", p)
}

func (v *terminalView) SetPhase(phase model.Phase) {
	if phase.IsFinished() && v.drawn {
		fmt.Fprintln(v.w)
		v.drawn = false
	}
}

func (v *terminalView) Notify(kind session.NoticeKind, title, message string) {
	if v.drawn {
		fmt.Fprintln(v.w)
		v.drawn = false
	}
	switch kind {
	case session.NoticeError:
		v.failure = message
		v.bad.Fprintf(v.w, "%s: %s\n", title, message)
	case session.NoticeSuccess:
		v.ok.Fprintln(v.w, message)
	default:
		v.info.Fprintf(v.w, "%s: %s\n", title, message)
	}
}
