package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	once sync.Once
	log  *slog.Logger
)

// Init configures the process-wide logger. level is one of debug/info/warn/
// error; format is "json" or "text". Safe to call more than once; only the
// first call wins.
func Init(level, format string) {
	once.Do(func() {
		var lvl slog.Level
		switch strings.ToLower(level) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		default:
			lvl = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{Level: lvl}
		var handler slog.Handler
		if strings.ToLower(format) == "text" {
			handler = slog.NewTextHandler(os.Stdout, opts)
		} else {
			handler = slog.NewJSONHandler(os.Stdout, opts)
		}
		log = slog.New(handler)
	})
}

func get() *slog.Logger {
	if log == nil {
		Init("info", "json")
	}
	return log
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

// normalize tolerates the bare-error call shape logger.Error("msg", err) used
// throughout the services alongside the key-value shape.
func normalize(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
	}
	return args
}
