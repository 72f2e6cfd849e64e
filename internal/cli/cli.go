package cli

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ytget/tubeflow/internal/config"
	"github.com/ytget/tubeflow/internal/logging"
)

// Version is reported by --version; main overrides it at startup
var Version = "dev"

// deps is what Before builds and the commands share
type deps struct {
	logger  *zap.Logger
	console *logging.Console
}

// Run runs the CLI application. Without a sub-command it opens the window.
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	d := &deps{
		logger:  zap.NewNop(),
		console: logging.NewConsole(logging.DefaultConsoleLines),
	}

	envErr := godotenv.Load()

	app := &cli.Command{
		Name:    "tubeflow",
		Usage:   "Download YouTube videos and playlists with yt-dlp",
		Version: Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure(d.console.Core(loggerCfg.LevelEnabler()))
			if err != nil {
				return nil, err
			}
			d.logger = logger
			zap.ReplaceGlobals(logger)

			if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
				logger.Warn("failed to load .env", zap.Error(envErr))
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			_ = d.logger.Sync()
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runGUI(ctx, d)
		},
		Commands: []*cli.Command{
			cmdGet(d),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		d.logger.Error("CLI execution failed", zap.Error(err))
		return err
	}

	return nil
}
