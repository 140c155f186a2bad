// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates sequences of colors linearly interpolated
// between two endpoint colors.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidStepCount is returned for a step count that cannot
// produce a palette.
var ErrInvalidStepCount = errors.New("invalid step count")

// MaxSteps is the largest palette that [Generate] will produce.
const MaxSteps = 1 << 16

// Generate returns steps colors going from a to b in equal increments,
// with each channel rounded to the nearest integer (halves round up).
// The first color is always a and, for steps >= 2, the last is always b.
// A single step yields just a, and zero steps yields an empty palette.
// Negative step counts and counts above [MaxSteps] return an error
// wrapping [ErrInvalidStepCount].
func Generate(a, b color.RGBA, steps int) ([]color.RGBA, error) {
	if steps < 0 || steps > MaxSteps {
		return nil, fmt.Errorf("palette.Generate: %w: %d: must be between 0 and %d", ErrInvalidStepCount, steps, MaxSteps)
	}
	p := make([]color.RGBA, steps)
	if steps == 1 {
		p[0] = a
		return p, nil
	}
	for i := range p {
		p[i] = Lerp(a, b, float64(i)/float64(steps-1))
	}
	return p, nil
}

// Lerp returns the color at fraction t along the line from a to b,
// interpolating each of the red, green, and blue channels independently
// and rounding to the nearest integer. The result is opaque.
// t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	fa := float64(a)
	v := math.Round(fa + (float64(b)-fa)*t)
	return uint8(min(max(v, 0), 255))
}
