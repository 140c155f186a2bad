// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analyze checks every color of a palette interpolated between
// two colors for sufficient contrast against black, and reports the
// per-step ratios along with an overall verdict.
package analyze

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"strings"

	"cogentcore.org/contrast/colors"
	"cogentcore.org/contrast/palette"
	"cogentcore.org/contrast/wcag"
)

// ErrInvalidStepCount is returned when the step count is not
// a base-10 integer between 1 and [MaxSteps].
var ErrInvalidStepCount = palette.ErrInvalidStepCount

// MaxSteps is the largest accepted step count.
const MaxSteps = palette.MaxSteps

// Entry is the result for one color of the palette.
type Entry struct {

	// Index is the 1-based position of the color in the palette.
	Index int `json:"index" yaml:"index"`

	// Hex is the color as a lowercase #rrggbb string.
	Hex string `json:"hex" yaml:"hex"`

	// Ratio is the contrast ratio of the color against [Report.Against].
	Ratio float64 `json:"ratio" yaml:"ratio"`
}

// Pass returns whether the entry's displayed ratio meets the threshold.
func (e *Entry) Pass(threshold float64) bool {
	return wcag.Meets(e.Ratio, threshold)
}

// Report is the complete result of one analysis.
type Report struct {

	// First is the starting color of the palette.
	First string `json:"first" yaml:"first"`

	// Second is the ending color of the palette.
	Second string `json:"second" yaml:"second"`

	// Steps is the number of colors in the palette.
	Steps int `json:"steps" yaml:"steps"`

	// Against is the reference color each palette color is compared with.
	Against string `json:"against" yaml:"against"`

	// Threshold is the minimum acceptable contrast ratio.
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// Entries are the per-color results, in palette order.
	Entries []Entry `json:"entries" yaml:"entries"`

	// BelowThreshold is whether at least one entry has a
	// displayed ratio strictly below Threshold.
	BelowThreshold bool `json:"belowThreshold" yaml:"belowThreshold"`
}

// Analyze generates a palette of the given number of steps from a to b
// and computes the contrast ratio of each color against black. The step
// count must be between 1 and [MaxSteps]; otherwise an error wrapping
// [ErrInvalidStepCount] is returned.
func Analyze(a, b color.RGBA, steps int) (*Report, error) {
	if err := checkSteps(steps); err != nil {
		return nil, err
	}
	p, err := palette.Generate(a, b, steps)
	if err != nil {
		return nil, err
	}
	slog.Debug("generated palette", "first", colors.AsHex(a), "second", colors.AsHex(b), "steps", len(p))

	r := &Report{
		First:     colors.AsHex(a),
		Second:    colors.AsHex(b),
		Steps:     steps,
		Against:   colors.AsHex(colors.Black),
		Threshold: wcag.AAA,
		Entries:   make([]Entry, len(p)),
	}
	for i, c := range p {
		r.Entries[i] = Entry{
			Index: i + 1,
			Hex:   colors.AsHex(c),
			Ratio: wcag.ContrastRatio(c, colors.Black),
		}
	}
	r.BelowThreshold = AnyBelow(r.Entries, r.Threshold)
	slog.Debug("analyzed contrast", "belowThreshold", r.BelowThreshold)
	return r, nil
}

// AnalyzeHex is like [Analyze], but takes its inputs as the strings a
// user would type: two #rrggbb colors and a base-10 step count. All
// inputs are validated before anything is computed, and all of the
// input errors are returned together.
func AnalyzeHex(first, second, steps string) (*Report, error) {
	a, aerr := colors.FromHex(first)
	b, berr := colors.FromHex(second)
	n, serr := ParseSteps(steps)
	if err := errors.Join(aerr, berr, serr); err != nil {
		return nil, err
	}
	return Analyze(a, b, n)
}

// ParseSteps parses a step count from a base-10 string, ignoring
// surrounding whitespace. It returns an error wrapping
// [ErrInvalidStepCount] unless the result is between 1 and [MaxSteps].
func ParseSteps(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) && errors.Is(nerr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("analyze: %w: %s: must be at most %d", ErrInvalidStepCount, s, MaxSteps)
		}
		return 0, fmt.Errorf("analyze: %w: %q is not an integer", ErrInvalidStepCount, s)
	}
	if err := checkSteps(n); err != nil {
		return 0, err
	}
	return n, nil
}

func checkSteps(n int) error {
	if n < 1 || n > MaxSteps {
		return fmt.Errorf("analyze: %w: %d: must be between 1 and %d", ErrInvalidStepCount, n, MaxSteps)
	}
	return nil
}

// AnyBelow returns whether any of the given entries has a displayed
// ratio strictly below the threshold.
func AnyBelow(entries []Entry, threshold float64) bool {
	below := false
	for i := range entries {
		below = below || !entries[i].Pass(threshold)
	}
	return below
}
