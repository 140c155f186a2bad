// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"
)

// NewHandler returns a [slog.Handler] that writes terse text records to
// the given writer. Records below [UserLevel] are dropped, timestamps
// are omitted, and the level is colored when w is a color terminal.
func NewHandler(w io.Writer) slog.Handler {
	cz := NewColorizer(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				if level, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(cz.Level(level, level.String()))
				}
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one that
// writes to [os.Stderr] using [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
