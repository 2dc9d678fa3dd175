package gridview

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gridview/common"
)

// Logger 包装slog.Logger，统一表格相关日志的字段名
type Logger struct {
	*slog.Logger
}

// NewLogger handler为nil时输出文本日志到stderr
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger 丢弃所有日志
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// ParseLevel 解析debug/info/warn/error，无法识别时返回info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func (l *Logger) WithView(id common.ViewId) *Logger {
	return &Logger{
		Logger: l.Logger.With("view", id.String()),
	}
}

// LogStage 记录一次流水线阶段的重新计算
func (l *Logger) LogStage(ctx context.Context, stage string, in, out int) {
	l.DebugContext(ctx, "stage recomputed",
		"stage", stage,
		"in", in,
		"out", out,
	)
}

// LogFallback 记录一次列渲染失败
func (l *Logger) LogFallback(ctx context.Context, column string, err error) {
	l.WarnContext(ctx, "column text fell back to raw value",
		"column", column,
		"error", err,
	)
}

func (l *Logger) LogDispatch(ctx context.Context, action string, selected int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "action failed",
			"action", action,
			"selected", selected,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "action dispatched",
			"action", action,
			"selected", selected,
		)
	}
}
