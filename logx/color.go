// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"image/color"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages and reports.
// It is on by default; output that is not a terminal, or an
// environment with NO_COLOR set, is never colored regardless.
var UseColor = true

var (
	// SuccessColor is the color used for passing results.
	SuccessColor color.Color = color.RGBA{0x38, 0xa1, 0x4b, 0xff}

	// ErrorColor is the color used for errors and failing results.
	ErrorColor color.Color = color.RGBA{0xd9, 0x3a, 0x2f, 0xff}

	// WarnColor is the color used for warnings.
	WarnColor color.Color = color.RGBA{0xd9, 0x9a, 0x1e, 0xff}

	// InfoColor is the color used for informational messages.
	InfoColor color.Color = color.RGBA{0x3b, 0x7d, 0xd8, 0xff}

	// DebugColor is the color used for debug messages.
	DebugColor color.Color = color.RGBA{0x8a, 0x8a, 0x8a, 0xff}
)

// Colorizer applies terminal colors to strings destined for
// a particular output, using the color profile of that output.
type Colorizer struct {
	profile termenv.Profile
}

// NewColorizer returns a [Colorizer] for the given output. If [UseColor]
// is off, or the output does not support color, the Colorizer returns
// strings unchanged.
func NewColorizer(w io.Writer) *Colorizer {
	if !UseColor {
		return &Colorizer{profile: termenv.Ascii}
	}
	return &Colorizer{profile: termenv.NewOutput(w).EnvColorProfile()}
}

// Enabled returns whether the Colorizer emits any color.
func (c *Colorizer) Enabled() bool {
	return c.profile != termenv.Ascii
}

// Apply returns the string with the given foreground color applied.
func (c *Colorizer) Apply(clr color.Color, str string) string {
	if !c.Enabled() {
		return str
	}
	return c.profile.String(str).Foreground(c.profile.FromColor(clr)).String()
}

// Success returns the string in [SuccessColor].
func (c *Colorizer) Success(str string) string {
	return c.Apply(SuccessColor, str)
}

// Error returns the string in [ErrorColor].
func (c *Colorizer) Error(str string) string {
	return c.Apply(ErrorColor, str)
}

// Level returns the string in the color for the given log level.
func (c *Colorizer) Level(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return c.Apply(ErrorColor, str)
	case level >= slog.LevelWarn:
		return c.Apply(WarnColor, str)
	case level >= slog.LevelInfo:
		return c.Apply(InfoColor, str)
	default:
		return c.Apply(DebugColor, str)
	}
}
