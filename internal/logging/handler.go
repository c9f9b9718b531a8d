// Package logging provides the shell's --debug diagnostic channel: a
// colorized slog.Handler writing to stderr, kept entirely separate from
// the shell's own stdout diagnostics (command-not-found, cd failures,
// and the like), which spec.md pins to exact, undecorated text.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/fatih/color"
)

// Handler is a minimal slog.Handler: one line per record holding a
// timestamp, a colored level tag and the message, followed by one
// indented key=value line per attribute, sorted by key.
type Handler struct {
	w      io.Writer
	level  slog.Level
	color  bool
	groups []string
	attrs  []slog.Attr
}

// NewHandler returns a Handler writing to w at the given minimum level.
// Color is enabled unless w is not a terminal-like destination the
// caller has already decided to keep plain.
func NewHandler(w io.Writer, level slog.Level, useColor bool) *Handler {
	return &Handler{w: w, level: level, color: useColor}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	color.NoColor = !h.color
	color.Output = h.w

	c := color.New()
	if _, err := c.Fprintf(h.w, "%s ", record.Time.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write time: %w", err)
	}

	switch record.Level {
	case slog.LevelDebug:
		c = color.New(color.FgCyan)
	case slog.LevelInfo:
		c = color.New(color.FgBlue)
	case slog.LevelWarn:
		c = color.New(color.FgYellow)
	case slog.LevelError:
		c = color.New(color.FgRed)
	default:
		c = color.New()
	}
	if _, err := c.Fprintf(h.w, "%-5s ", record.Level); err != nil {
		return fmt.Errorf("write level: %w", err)
	}

	kv := map[string]string{}
	for _, a := range h.attrs {
		kv[a.Key] = a.Value.String()
	}
	record.Attrs(func(a slog.Attr) bool {
		kv[a.Key] = a.Value.String()
		return true
	})

	if _, err := fmt.Fprintln(h.w, record.Message); err != nil {
		return err
	}
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := fmt.Fprintf(h.w, "    %s=%s\n", k, kv[k]); err != nil {
			return err
		}
	}
	return nil
}
