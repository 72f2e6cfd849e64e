package cli

import (
	"context"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/config"
	"github.com/ytget/tubeflow/internal/download"
	"github.com/ytget/tubeflow/internal/platform"
	"github.com/ytget/tubeflow/internal/ui"
)

// AppID identifies the preferences store
const AppID = "com.ytget.tubeflow"

func runGUI(_ context.Context, d *deps) error {
	logger := d.logger
	logger.Info("TubeFlow starting", zap.String("version", Version))

	a := app.NewWithID(AppID)
	w := a.NewWindow(AppID)

	settings := config.NewSettings(a)
	if dir := settings.GetDownloadDirectory(); dir != "" {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			logger.Warn("failed to ensure downloads dir", zap.Error(err))
		}
	}

	engine := download.NewYTDLPEngine(logger)
	orchestrator := download.NewOrchestrator(engine, download.WithLogger(logger))

	root := ui.NewRootUI(a, w, orchestrator, d.console, logger)
	a.Lifecycle().SetOnStarted(root.Start)

	w.ShowAndRun()
	logger.Info("TubeFlow stopped")
	return nil
}
