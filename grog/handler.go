// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grog

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to color the level names of log messages.
// It only has an effect when the output supports color.
var UseColor = true

// levelColors are the terminal colors of the level names.
var levelColors = map[slog.Level]string{
	slog.LevelDebug: "#868e96",
	slog.LevelInfo:  "#1971c2",
	slog.LevelWarn:  "#f08c00",
	slog.LevelError: "#e03131",
}

// NewHandler returns a new text [slog.Handler] that writes to the given
// writer and shows messages at or above [UserLevel]. Level names are
// colored with termenv when [UseColor] is on and w is a color terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	color := UseColor && out.Profile != termenv.Ascii
	opts := &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if !color {
					return a
				}
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				c, ok := levelColors[lvl]
				if !ok {
					return a
				}
				return slog.String(a.Key, out.String(lvl.String()).Foreground(out.Color(c)).String())
			}
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// SetDefaultLogger sets the default [slog] logger to one
// using [NewHandler] on the given writer, typically [os.Stderr].
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}
