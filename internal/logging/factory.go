package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrijs2005/listen/internal/filex"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Backend names accepted by New.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger writing to w. level is one of debug, info, warn, error.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSlog:
		var lv slog.Level
		if err := lv.UnmarshalText([]byte(levelOrDefault(level))); err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lv})
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		lv, err := zapcore.ParseLevel(levelOrDefault(level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(w), lv)
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

func levelOrDefault(level string) string {
	if strings.TrimSpace(level) == "" {
		return "info"
	}
	return strings.ToLower(strings.TrimSpace(level))
}

// Output returns the writer for log_file: fallback when path is empty,
// otherwise the file opened for appending. The returned func closes it.
func Output(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if strings.TrimSpace(path) == "" {
		return fallback, func() error { return nil }, nil
	}
	resolved, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(resolved, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
