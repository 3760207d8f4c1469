package uploader

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a short user-facing message about an upload.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

type Notifier interface {
	Notify(n Notification)
}

// ConsoleNotifier prints successes to out and errors to errOut.
type ConsoleNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func NewConsoleNotifier(out, errOut io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out, errOut: errOut}
}

func (n *ConsoleNotifier) Notify(note Notification) {
	if note.Level == LevelError {
		fmt.Fprintf(n.errOut, "❌ %s: %s\n", note.Title, note.Message)
		return
	}
	fmt.Fprintf(n.out, "✅ %s: %s\n", note.Title, note.Message)
}

type logNotifier struct {
	log *zap.Logger
}

// NewLogNotifier reports notifications through the server log.
func NewLogNotifier(log *zap.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(note Notification) {
	fields := []zap.Field{zap.String("title", note.Title), zap.String("message", note.Message)}
	if note.Level == LevelError {
		n.log.Warn("upload notification", fields...)
		return
	}
	n.log.Info("upload notification", fields...)
}
