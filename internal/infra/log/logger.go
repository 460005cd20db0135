package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"shiptrack/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 7
	defaultMaxAgeDays = 30
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = os.Stdout
	if file := newFileSink(params.Config.Env.Log); file != nil {
		out = io.MultiWriter(os.Stdout, file)
		if params.Lc != nil {
			params.Lc.Append(fx.Hook{
				OnStop: func(context.Context) error {
					return errors.WithStack(file.Close())
				},
			})
		}
	}

	return newLogger(out, params.Config.Env.Log.Pretty, level), nil
}

func newLogger(out io.Writer, pretty bool, level slog.Level) *slog.Logger {
	if pretty {
		return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

// newFileSink returns a size-rotated file writer, or nil when no file is set.
func newFileSink(cfg config.Log) *lumberjack.Logger {
	if strings.TrimSpace(cfg.File) == "" {
		return nil
	}

	sink := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	}
	if sink.MaxSize <= 0 {
		sink.MaxSize = defaultMaxSizeMB
	}
	if sink.MaxBackups <= 0 {
		sink.MaxBackups = defaultMaxBackups
	}
	if sink.MaxAge <= 0 {
		sink.MaxAge = defaultMaxAgeDays
	}

	return sink
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
