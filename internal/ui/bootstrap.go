package ui

import (
	"context"

	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/download"
	"github.com/ytget/tubeflow/internal/session"
)

// engineInstaller is satisfied by *download.EngineInstaller
type engineInstaller interface {
	Installed(ctx context.Context) bool
	Ensure(ctx context.Context) (download.EngineInstall, error)
}

// bootstrapEngine makes sure yt-dlp is available. It runs off the event loop
// and reaches the view through dispatch. Info notices appear only when an
// install actually happens.
func bootstrapEngine(ctx context.Context, installer engineInstaller, l *Localization, view session.View, dispatch session.Dispatcher, logger *zap.Logger) {
	if !installer.Installed(ctx) {
		dispatch(func() {
			view.Notify(session.NoticeInfo, l.GetText(KeyInstallingTitle), l.GetText(KeyInstalling))
		})
	}

	res, err := installer.Ensure(ctx)
	dispatch(func() {
		switch {
		case err != nil:
			logger.Error("engine bootstrap failed", zap.Error(err))
			view.Notify(session.NoticeError, download.TitleError, l.GetText(KeyInstallFailed))
		case res.Downloaded:
			view.Notify(session.NoticeInfo, session.TitleSuccess, l.GetText(KeyInstalled))
		}
	})
}
