package logger

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tsegayberhanu/echodash/config"
)

// Setup builds the process logger from config and installs it as the slog
// default.
func Setup(cfg *config.Config) *slog.Logger {
	var formatter log.Formatter
	switch cfg.LogFormat {
	case "json":
		formatter = log.JSONFormatter
	case "text":
		formatter = log.TextFormatter
	default:
		formatter = log.LogfmtFormatter
	}

	level := log.InfoLevel
	switch cfg.LogLevel {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "echodash",
		Formatter:       formatter,
		Level:           level,
	})

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}
