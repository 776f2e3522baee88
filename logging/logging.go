// Package logging sets up the process-wide slog logger with a compact
// color-coded handler.
package logging

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/fatih/color"
)

type colorHandler struct {
	l     *log.Logger
	level slog.Level
}

func NewColorHandler(out io.Writer, level slog.Level) slog.Handler {
	return &colorHandler{
		l:     log.New(out, "", 0),
		level: level,
	}
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.HiBlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	attrs := ""
	r.Attrs(func(a slog.Attr) bool {
		attrs += color.GreenString(a.Key) + "=" + fmt.Sprint(a.Value.Any()) + " "
		return true
	})

	h.l.Println(r.Time.Format("15:04:05.000"), level, r.Message, attrs)
	return nil
}

func (h *colorHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *colorHandler) WithGroup(_ string) slog.Handler { return h }

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Setup installs the colored handler as the default logger.
func Setup() {
	slog.SetDefault(slog.New(NewColorHandler(os.Stdout, slog.LevelDebug)))
}
