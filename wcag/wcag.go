// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wcag computes WCAG 2.x relative luminance and contrast ratios
// for sRGB colors.
package wcag

import (
	"image/color"
	"math"
	"strconv"

	"cogentcore.org/contrast/colors"
)

// AAA is the minimum contrast ratio for normal text at WCAG level AAA.
const AAA = 7.0

// Luminance weights of the sRGB primaries.
const (
	RedWeight   = 0.2126
	GreenWeight = 0.7152
	BlueWeight  = 0.0722
)

// ChannelToLinear converts an 8-bit sRGB channel value to linear
// intensity in [0, 1], removing gamma correction.
func ChannelToLinear(v uint8) float64 {
	n := float64(v) / 255
	if n <= 0.03928 {
		return n / 12.92
	}
	return math.Pow((n+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of the given color,
// which is 0 for black and 1 for white. Alpha is ignored.
func Luminance(c color.Color) float64 {
	r := colors.AsRGBA(c)
	return RedWeight*ChannelToLinear(r.R) + GreenWeight*ChannelToLinear(r.G) + BlueWeight*ChannelToLinear(r.B)
}

// ContrastRatio returns the contrast ratio between the given two colors.
// The contrast ratio will be between 1 and 21, and does not depend on
// the order of the arguments.
func ContrastRatio(a, b color.Color) float64 {
	return ContrastRatioOfLuminances(Luminance(a), Luminance(b))
}

// ContrastRatioOfLuminances returns the contrast ratio of two relative luminances.
func ContrastRatioOfLuminances(a, b float64) float64 {
	lighter := max(a, b)
	darker := min(a, b)
	return (lighter + 0.05) / (darker + 0.05)
}

// FormatRatio formats the given ratio with exactly two decimal places.
func FormatRatio(ratio float64) string {
	return strconv.FormatFloat(ratio, 'f', 2, 64)
}

// RoundRatio returns the given ratio rounded to the value displayed by
// [FormatRatio], so that comparisons agree with what the user sees.
func RoundRatio(ratio float64) float64 {
	r, err := strconv.ParseFloat(FormatRatio(ratio), 64)
	if err != nil {
		return ratio
	}
	return r
}

// Meets returns whether the given ratio, as displayed, is at least
// the given threshold, such as [AAA].
func Meets(ratio, threshold float64) bool {
	return RoundRatio(ratio) >= threshold
}
