package config

import (
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ytget/tubeflow/internal/platform"
)

// Environment variables read by the logger flags
const (
	EnvLogLevel = "TUBEFLOW_LOG_LEVEL"
	EnvLogJSON  = "TUBEFLOW_LOG_JSON"
	EnvLogFile  = "TUBEFLOW_LOG_FILE"
)

// Logger holds logger configuration
type Logger struct {
	Level string
	JSON  bool
	File  string
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &c.Level,
			Sources:     cli.EnvVars(EnvLogLevel),
		},
		&cli.BoolFlag{
			Name:        "log-json",
			Usage:       "Output logs in JSON format",
			Value:       false,
			Destination: &c.JSON,
			Sources:     cli.EnvVars(EnvLogJSON),
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "Also write logs to this file",
			Destination: &c.File,
			Sources:     cli.EnvVars(EnvLogFile),
		},
	}
}

// Configure builds a zap logger writing to stderr (and File when set),
// teed into any extra cores such as the in-window console.
func (c *Logger) Configure(extra ...zapcore.Core) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid log level", goerr.V("level", c.Level))
	}

	encoding := "console"
	if c.JSON {
		encoding = "json"
	}

	outputs := []string{"stderr"}
	if c.File != "" {
		if err := platform.CreateDirectoryIfNotExists(filepath.Dir(c.File)); err != nil {
			return nil, goerr.Wrap(err, "failed to create log directory", goerr.V("file", c.File))
		}
		outputs = append(outputs, c.File)
	}

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Encoding:    encoding,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(append([]zapcore.Core{core}, extra...)...)
	}))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build logger")
	}
	return logger, nil
}

// LevelEnabler returns the configured level, falling back to info
func (c *Logger) LevelEnabler() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
